// Package instance parses the textual CEVRP instance file format (spec.md
// §6): a header of KEY: VALUE lines followed by NODE_COORD_SECTION,
// DEMAND_SECTION, STATIONS_COORD_SECTION, and DEPOT_SECTION blocks,
// terminated by EOF.
//
// Grounded on the teacher's builder package (builder/impl_complete.go)
// for the "parse into plain data, then hand to a validating constructor"
// split: this package only produces []model.Node plus parameters, and
// model.NewInstance does every invariant check.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andromedak2/cevrp/internal/model"
)

// ErrInvalidInstance wraps every parse failure: malformed headers, section
// markers, or rows (spec.md §7 "InvalidInstance").
var ErrInvalidInstance = errors.New("instance: invalid instance file")

type header struct {
	comment      string
	typ          string
	optimalValue *float64
	vehicles     int
	dimension    int
	stations     int
	capacity     int
	battery      float64
	consumption  float64
}

// Parse reads a full instance file from r and returns a validated
// *model.Instance.
func Parse(r io.Reader) (*model.Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	h := header{}
	var nodes = map[string]model.Node{}
	var order []string

	section := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if strings.HasSuffix(line, "_SECTION") {
			section = line
			continue
		}

		if section == "" {
			if err := parseHeaderLine(&h, line); err != nil {
				return nil, err
			}
			continue
		}

		if err := parseSectionLine(section, line, nodes, &order); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}

	nodeList := make([]model.Node, 0, len(order))
	for _, key := range order {
		nodeList = append(nodeList, nodes[key])
	}

	if h.capacity == 0 || h.battery == 0 || h.consumption == 0 || h.vehicles == 0 {
		return nil, ErrInvalidInstance
	}

	inst, err := model.NewInstance(nodeList, h.capacity, h.battery, h.consumption, h.vehicles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	inst.Comment = h.comment
	inst.Type = h.typ
	inst.OptimalValue = h.optimalValue
	return inst, nil
}

func parseHeaderLine(h *header, line string) error {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: malformed header line %q", ErrInvalidInstance, line)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	var err error
	switch key {
	case "COMMENT":
		h.comment = value
	case "TYPE":
		h.typ = value
	case "OPTIMAL_VALUE":
		var f float64
		if f, err = strconv.ParseFloat(value, 64); err == nil {
			h.optimalValue = &f
		}
	case "VEHICLES":
		h.vehicles, err = strconv.Atoi(value)
	case "DIMENSION":
		h.dimension, err = strconv.Atoi(value)
	case "STATIONS":
		h.stations, err = strconv.Atoi(value)
	case "CAPACITY":
		h.capacity, err = strconv.Atoi(value)
	case "ENERGY_CAPACITY":
		h.battery, err = strconv.ParseFloat(value, 64)
	case "ENERGY_CONSUMPTION":
		h.consumption, err = strconv.ParseFloat(value, 64)
	case "EDGE_WEIGHT_FORMAT":
		// Recognized but not interpreted: this implementation always uses
		// Euclidean distance (spec.md §4.1).
	default:
		// Unknown header keys are ignored rather than rejected, matching
		// the original format's extensibility.
	}
	if err != nil {
		return fmt.Errorf("%w: header %q: %v", ErrInvalidInstance, key, err)
	}
	return nil
}

func parseSectionLine(section, line string, nodes map[string]model.Node, order *[]string) error {
	fields := strings.Fields(line)

	switch section {
	case "NODE_COORD_SECTION":
		if len(fields) != 3 {
			return fmt.Errorf("%w: NODE_COORD_SECTION row %q", ErrInvalidInstance, line)
		}
		id := fields[0]
		x, err1 := strconv.ParseFloat(fields[1], 64)
		y, err2 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("%w: NODE_COORD_SECTION row %q", ErrInvalidInstance, line)
		}
		n, exists := nodes[id]
		if !exists {
			n = model.Node{Key: id, Kind: model.Customer}
			*order = append(*order, id)
		}
		n.Coord = model.Coord{X: x, Y: y}
		nodes[id] = n

	case "DEMAND_SECTION":
		if len(fields) != 2 {
			return fmt.Errorf("%w: DEMAND_SECTION row %q", ErrInvalidInstance, line)
		}
		id := fields[0]
		d, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%w: DEMAND_SECTION row %q", ErrInvalidInstance, line)
		}
		n, exists := nodes[id]
		if !exists {
			n = model.Node{Key: id, Kind: model.Customer}
			*order = append(*order, id)
		}
		n.Demand = d
		nodes[id] = n

	case "STATIONS_COORD_SECTION":
		id := fields[0]
		n, exists := nodes[id]
		if !exists {
			n = model.Node{Key: id}
			*order = append(*order, id)
		}
		n.Kind = model.Station
		nodes[id] = n

	case "DEPOT_SECTION":
		id := fields[0]
		if id == "-1" {
			return nil // TSPLIB-style terminator some instance dialects include.
		}
		n, exists := nodes[id]
		if !exists {
			n = model.Node{Key: id}
			*order = append(*order, id)
		}
		n.Kind = model.Depot
		nodes[id] = n

	default:
		return fmt.Errorf("%w: unknown section %q", ErrInvalidInstance, section)
	}
	return nil
}
