package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID clave de Locals con el id de la petición.
const LocalRequestID = "request_id"

// RequestContext asigna un id a cada petición (o respeta el recibido), deja en el
// UserContext un logger con ese id y registra la petición al terminar.
func RequestContext(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalRequestID, id)

		log := base.With().Str("request_id", id).Logger()
		c.SetUserContext(log.WithContext(c.UserContext()))

		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	}
}

// GetRequestID devuelve el id de la petición actual.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
