package http

import (
	"fmt"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cast"
)

const (
	actorContextKey = "actor"
	tokenQueryParam = "token"
)

// A token names its bearer with exactly one of these claims. The first one
// present wins.
var actorClaims = []struct {
	name string
	role kernel.Role
}{
	{"owner_id", kernel.Owner},
	{"delivery_partner_id", kernel.DeliveryPartner},
	{"customer_id", kernel.Customer},
}

// Auth verifies an HS256 bearer token and stores the resulting kernel.Actor
// in the echo context. WebSocket clients cannot set headers, so the token
// query parameter is accepted when the header is absent.
func Auth(secret []byte, skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			raw := bearerToken(c)
			if raw == "" {
				return errs.NewUnauthorizedError("missing bearer token")
			}

			actor, err := ParseActor(raw, secret)
			if err != nil {
				return err
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ParseActor validates the token signature and expiry and maps its claims to an actor.
func ParseActor(raw string, secret []byte) (kernel.Actor, error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return kernel.Actor{}, errs.NewUnauthorizedError("unexpected claims")
	}

	for _, ac := range actorClaims {
		value, present := claims[ac.name]
		if !present {
			continue
		}
		id, castErr := cast.ToInt64E(value)
		if castErr != nil {
			return kernel.Actor{}, errs.NewUnauthorizedErrorWithCause(fmt.Sprintf("bad %s claim", ac.name), castErr)
		}
		actor, actorErr := kernel.NewActor(ac.role, id)
		if actorErr != nil {
			return kernel.Actor{}, errs.NewUnauthorizedErrorWithCause(fmt.Sprintf("bad %s claim", ac.name), actorErr)
		}
		return actor, nil
	}
	return kernel.Actor{}, errs.NewUnauthorizedError("token names no owner, customer or delivery partner")
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if scheme, token, found := strings.Cut(header, " "); found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return c.QueryParam(tokenQueryParam)
}

func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, found := c.Get(actorContextKey).(kernel.Actor)
	if !found {
		return kernel.Actor{}, errs.NewUnauthorizedError("not authenticated")
	}
	return actor, nil
}

func requireRole(c echo.Context, role kernel.Role) (kernel.Actor, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return kernel.Actor{}, err
	}
	if !actor.Is(role) {
		return kernel.Actor{}, errs.NewForbiddenError(fmt.Sprintf("%s access required", role))
	}
	return actor, nil
}
