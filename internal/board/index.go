package board

import "encoding/json"

// Kind selects which assignment index an operation works on.
type Kind string

const (
	KindWorker    Kind = "worker"
	KindEquipment Kind = "equipment"
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "worker", "workers":
		return KindWorker, nil
	case "equipment", "equip":
		return KindEquipment, nil
	}
	return "", ErrUnknownKind
}

// Index maps an entity id to the project holding it. A missing key means unassigned,
// so an entity can never sit in two projects at once.
type Index map[string]string

// UnmarshalJSON drops null and empty values, which older snapshots used for "unassigned".
func (ix *Index) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Index, len(raw))
	for id, pid := range raw {
		if pid != nil && *pid != "" {
			out[id] = *pid
		}
	}
	*ix = out
	return nil
}

func (ix Index) clone() Index {
	out := make(Index, len(ix))
	for k, v := range ix {
		out[k] = v
	}
	return out
}
