package server

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"pkg.world.dev/archon/codec"
	"pkg.world.dev/archon/cql"
	"pkg.world.dev/archon/types"
)

type CQLQueryRequest struct {
	CQL string `json:"cql"`
}

type cqlData struct {
	ID         types.EntityID             `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
}

type CQLQueryResponse struct {
	Results []cqlData `json:"results"`
}

// postCQL evaluates a CQL expression against the full entity list and
// returns the matching entities with their component payloads.
func (s *Server) postCQL(ctx *fiber.Ctx) error {
	req := new(CQLQueryRequest)
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	predicate, err := cql.Parse(req.CQL, s.world.Filters())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	results := make([]cqlData, 0)
	for _, e := range s.world.Entities() {
		if !predicate.Matches(e) {
			continue
		}
		id, _ := e.ID()
		element := cqlData{
			ID:         id,
			Components: make(map[string]json.RawMessage),
		}
		for _, name := range e.ComponentNames() {
			payload, _ := e.Component(name)
			bz, err := codec.Encode(payload)
			if err != nil {
				return err
			}
			element.Components[name] = bz
		}
		results = append(results, element)
	}
	return ctx.JSON(CQLQueryResponse{Results: results})
}
