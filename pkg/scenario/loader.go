// Package scenario decodes the Beluga Challenge's JSON scenario document
// (spec §6) into an initial problem.State. It is a pure decoder: no search
// logic lives here, and a malformed document always fails loudly rather
// than yielding a partial snapshot.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/beluga-challenge/go-mcts/pkg/domain"
	"github.com/beluga-challenge/go-mcts/pkg/problem"
)

type jigDoc struct {
	Type  string `json:"type"`
	Empty bool   `json:"empty"`
}

type flightDoc struct {
	Incoming []string `json:"incoming"`
	Outgoing []string `json:"outgoing"`
}

type productionLineDoc struct {
	Schedule []string `json:"schedule"`
}

type rackDoc struct {
	Size int      `json:"size"`
	Jigs []string `json:"jigs"`
}

type document struct {
	Jigs            json.RawMessage     `json:"jigs"`
	Flights         []flightDoc         `json:"flights"`
	ProductionLines []productionLineDoc `json:"production_lines"`
	Racks           []rackDoc           `json:"racks"`
	TrailersBeluga  []json.RawMessage   `json:"trailers_beluga"`
	TrailersFactory []json.RawMessage   `json:"trailers_factory"`
	Hangars         []json.RawMessage   `json:"hangars"`
}

// Load reads and decodes the scenario document at path into an initial
// problem.State.
func Load(path string) (*problem.State, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %q: %w", path, err)
	}
	return Decode(raw)
}

// Decode parses a scenario document already held in memory.
func Decode(raw []byte) (*problem.State, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	jigs, err := decodeJigs(doc.Jigs)
	if err != nil {
		return nil, err
	}

	belugas, err := decodeFlights(doc.Flights, len(jigs))
	if err != nil {
		return nil, err
	}

	lines, err := decodeProductionLines(doc.ProductionLines, len(jigs))
	if err != nil {
		return nil, err
	}

	racks, err := decodeRacks(doc.Racks, jigs, len(jigs))
	if err != nil {
		return nil, err
	}

	trailersBeluga := emptySlots(len(doc.TrailersBeluga))
	trailersFactory := emptySlots(len(doc.TrailersFactory))
	hangars := emptySlots(len(doc.Hangars))

	return problem.NewState(jigs, belugas, trailersBeluga, trailersFactory, racks, lines, hangars), nil
}

// decodeJigs walks the jigs object's keys in their source order — the
// spec fixes jig identity by position in that iteration, not by the
// digits embedded in the key itself.
func decodeJigs(raw json.RawMessage) ([]domain.Jig, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: missing \"jigs\"", ErrMalformedDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: jigs: %v", ErrMalformedDocument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: \"jigs\" must be an object", ErrMalformedDocument)
	}

	var jigs []domain.Jig
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: jigs: %v", ErrMalformedDocument, err)
		}
		key, _ := keyTok.(string)

		var entry jigDoc
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: jig %q: %v", ErrMalformedDocument, key, err)
		}

		jigType, ok := domain.JigTypeByName(entry.Type)
		if !ok {
			return nil, fmt.Errorf("%w: jig %q has type %q", ErrUnknownJigType, key, entry.Type)
		}
		jigs = append(jigs, domain.Jig{Type: jigType, Empty: entry.Empty})
	}

	return jigs, nil
}

// extractID decodes a "jig<N>" reference to its zero-based registry index.
func extractID(name string) (int, error) {
	digits := strings.TrimPrefix(name, "jig")
	if digits == name {
		return 0, fmt.Errorf("%w: %q", ErrUnknownJigName, name)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownJigName, name)
	}
	return n - 1, nil
}

func resolveJigRef(name string, jigCount int) (int, error) {
	id, err := extractID(name)
	if err != nil {
		return 0, err
	}
	if id < 0 || id >= jigCount {
		return 0, fmt.Errorf("%w: %q resolves to out-of-range id %d", ErrUnknownJigName, name, id)
	}
	return id, nil
}

func decodeFlights(flights []flightDoc, jigCount int) ([]domain.Beluga, error) {
	belugas := make([]domain.Beluga, 0, len(flights))
	for _, f := range flights {
		incoming := make([]int, 0, len(f.Incoming))
		for _, name := range f.Incoming {
			id, err := resolveJigRef(name, jigCount)
			if err != nil {
				return nil, err
			}
			incoming = append(incoming, id)
		}

		outgoing := make([]domain.JigType, 0, len(f.Outgoing))
		for _, name := range f.Outgoing {
			t, ok := domain.JigTypeByName(name)
			if !ok {
				return nil, fmt.Errorf("%w: outgoing type %q", ErrUnknownJigType, name)
			}
			outgoing = append(outgoing, t)
		}

		belugas = append(belugas, domain.Beluga{CurrentJigs: incoming, Outgoing: outgoing})
	}
	return belugas, nil
}

func decodeProductionLines(lines []productionLineDoc, jigCount int) ([]domain.ProductionLine, error) {
	result := make([]domain.ProductionLine, 0, len(lines))
	for _, l := range lines {
		schedule := make([]int, 0, len(l.Schedule))
		for _, name := range l.Schedule {
			id, err := resolveJigRef(name, jigCount)
			if err != nil {
				return nil, err
			}
			schedule = append(schedule, id)
		}
		result = append(result, domain.ProductionLine{ScheduledJigs: schedule})
	}
	return result, nil
}

func decodeRacks(racks []rackDoc, jigs []domain.Jig, jigCount int) ([]domain.Rack, error) {
	result := make([]domain.Rack, 0, len(racks))
	for i, r := range racks {
		contents := make([]int, 0, len(r.Jigs))
		used := 0
		for _, name := range r.Jigs {
			id, err := resolveJigRef(name, jigCount)
			if err != nil {
				return nil, err
			}
			contents = append(contents, id)
			used += jigs[id].Size()
		}
		if used > r.Size {
			return nil, fmt.Errorf("%w: rack %d holds %d, capacity %d", ErrRackOverCapacity, i, used, r.Size)
		}
		result = append(result, domain.Rack{Capacity: r.Size, CurrentJigs: contents})
	}
	return result, nil
}

func emptySlots(n int) []int {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = problem.EmptySlot
	}
	return slots
}
