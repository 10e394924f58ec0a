package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/consulta-cnpj/internal/application/dto"
	"github.com/jhoicas/consulta-cnpj/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CNPJUC    *usecase.CNPJUseCase
	JWTSecret string
	JWTIssuer string
	Logger    zerolog.Logger
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())
	app.Use(RequestContext(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	// Con JWT_SECRET vacío AuthMiddleware deja pasar todo.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	cnpjHandler := NewCNPJHandler(deps.CNPJUC)
	cnpjGroup := api.Group("/cnpj")
	cnpjGroup.Post("/lote", cnpjHandler.BatchLookup)
	cnpjGroup.Get("/:cnpj", cnpjHandler.GetCompany)
	cnpjGroup.Get("/:cnpj/socios", cnpjHandler.GetPartners)
	cnpjGroup.Get("/:cnpj/comprovante", cnpjHandler.RegistrationCard)
}

// ErrorHandler responde con dto.ErrorResponse los errores que no maneja un handler
// (rutas inexistentes, panics recuperados, límites de Fiber).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	body := dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	switch code {
	case fiber.StatusNotFound:
		body = dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"}
	case fiber.StatusMethodNotAllowed:
		body = dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: fe.Message}
	case fiber.StatusRequestEntityTooLarge:
		body = dto.ErrorResponse{Code: "BODY_TOO_LARGE", Message: fe.Message}
	}
	body.RequestID = GetRequestID(c)
	return c.Status(code).JSON(body)
}
