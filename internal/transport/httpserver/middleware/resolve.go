package middleware

import (
	"github.com/gofiber/fiber/v2"

	"question-bank-service/internal/app/service"
	"question-bank-service/internal/domain"
)

// facetParams maps each facet kind to its id and name query parameters.
var facetParams = map[domain.FacetKind][2]string{
	domain.FacetTopic:    {"topic_id", "topic"},
	domain.FacetLanguage: {"language_id", "language"},
	domain.FacetPosition: {"position_id", "position"},
}

// ResolveFacets returns a middleware that rewrites the facet id and
// name query parameters of a question search through the facet
// directories before the handler binds the request. Resolution is
// best-effort: tokens the directories cannot resolve stay in place, so
// the handler below never sees a dropped filter.
func ResolveFacets(resolvers *service.ResolverSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		args := c.Request().URI().QueryArgs()

		for kind, params := range facetParams {
			resolver := resolvers.For(kind)
			if resolver == nil {
				continue
			}

			idParam, nameParam := params[0], params[1]
			ids := c.Query(idParam)
			names := c.Query(nameParam)
			if ids == "" && names == "" {
				continue
			}

			resolvedIDs, resolvedNames := resolver.ResolveList(c.Context(), ids, names)

			if resolvedIDs == "" {
				args.Del(idParam)
			} else {
				args.Set(idParam, resolvedIDs)
			}
			if resolvedNames == "" {
				args.Del(nameParam)
			} else {
				args.Set(nameParam, resolvedNames)
			}
		}

		return c.Next()
	}
}
