package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/consulta-cnpj/internal/application/dto"
	"github.com/jhoicas/consulta-cnpj/internal/application/usecase"
	"github.com/jhoicas/consulta-cnpj/internal/domain"
)

// CNPJHandler maneja las peticiones HTTP de consulta de CNPJ.
type CNPJHandler struct {
	uc *usecase.CNPJUseCase
}

// NewCNPJHandler construye el handler inyectando el caso de uso.
func NewCNPJHandler(uc *usecase.CNPJUseCase) *CNPJHandler {
	return &CNPJHandler{uc: uc}
}

// GetCompany godoc
// @Summary      Consultar CNPJ
// @Description  Acepta el CNPJ con o sin máscara (11.222.333/0001-81 o 11222333000181).
// @Tags         cnpj
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ"
// @Success      200   {object}  entity.Company
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/cnpj/{cnpj} [get]
func (h *CNPJHandler) GetCompany(c *fiber.Ctx) error {
	out, err := h.uc.GetCompany(c.UserContext(), cnpjParam(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeError(c, domain.ErrNotFound)
	}
	return c.JSON(out)
}

// GetPartners godoc
// @Summary      Quadro de sócios (QSA)
// @Tags         cnpj
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ"
// @Success      200   {object}  dto.PartnerListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/cnpj/{cnpj}/socios [get]
func (h *CNPJHandler) GetPartners(c *fiber.Ctx) error {
	out, err := h.uc.GetPartners(c.UserContext(), cnpjParam(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegistrationCard godoc
// @Summary      Comprovante de inscrição em PDF
// @Tags         cnpj
// @Produce      application/pdf
// @Param        cnpj  path  string  true  "CNPJ"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/cnpj/{cnpj}/comprovante [get]
func (h *CNPJHandler) RegistrationCard(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.RegistrationCard(c.UserContext(), cnpjParam(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

// BatchLookup godoc
// @Summary      Consulta em lote
// @Tags         cnpj
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchLookupRequest  true  "CNPJs"
// @Success      200   {object}  dto.BatchLookupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/cnpj/lote [post]
func (h *CNPJHandler) BatchLookup(c *fiber.Ctx) error {
	var in dto.BatchLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BatchLookup(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, body := fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	switch {
	case errors.Is(err, domain.ErrInvalidCNPJ):
		status, body = fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_CNPJ", Message: "CNPJ inválido"}
	case errors.Is(err, domain.ErrInvalidInput):
		status, body = fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		status, body = fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "CNPJ não encontrado"}
	default:
		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	}
	body.RequestID = GetRequestID(c)
	return c.Status(status).JSON(body)
}

// cnpjParam devuelve el parámetro :cnpj decodificado: la máscara llega con "/" como %2F.
func cnpjParam(c *fiber.Ctx) string {
	raw := c.Params("cnpj")
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}
