package transfer

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"opsboard/internal/board"
	"opsboard/internal/csvio"
	"opsboard/internal/pkg/apierror"
	"opsboard/internal/pkg/response"
	"opsboard/internal/seed"
)

// maxUpload bounds an import body.
const maxUpload = 5 << 20

type Handler struct {
	board *board.Board
}

func NewHandler(b *board.Board) *Handler {
	return &Handler{board: b}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import/workers", h.ImportWorkers)
	rg.POST("/import/equipment", h.ImportEquipment)
	rg.GET("/export/:table", h.Export)
	rg.POST("/seed", h.Seed)
}

// upload returns the CSV payload: the multipart "file" part when the request is
// a form upload, the raw body otherwise.
func upload(c *gin.Context) (io.Reader, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUpload)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

func (h *Handler) ImportWorkers(c *gin.Context) {
	r, err := upload(c)
	if err != nil {
		apierror.BadRequest(c)
		return
	}
	companyID := c.Query("companyId")
	if companyID == "" {
		companyID = c.PostForm("companyId")
	}
	if companyID != "" {
		if _, err := h.board.Company(companyID); err != nil {
			apierror.Write(c, err)
			return
		}
	}

	rep, err := csvio.ImportWorkers(c.Request.Context(), h.board, r, csvio.WorkerOptions{DefaultCompanyID: companyID})
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, rep)
}

func (h *Handler) ImportEquipment(c *gin.Context) {
	r, err := upload(c)
	if err != nil {
		apierror.BadRequest(c)
		return
	}
	rep, err := csvio.ImportEquipment(c.Request.Context(), h.board, r)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, rep)
}

// Export streams one table as text/csv.
func (h *Handler) Export(c *gin.Context) {
	table, err := csvio.ParseTable(c.Param("table"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	var buf bytes.Buffer
	if err := csvio.Export(&buf, h.board.Snapshot(), table); err != nil {
		apierror.Write(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, table))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Seed replaces the board with the sample data. It is one undo step.
func (h *Handler) Seed(c *gin.Context) {
	if err := seed.Seed(c.Request.Context(), h.board); err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"projects":  len(h.board.Projects()),
		"workers":   len(h.board.Workers()),
		"equipment": len(h.board.EquipmentList()),
	})
}
