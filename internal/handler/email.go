package handler

import (
	"github.com/deppfellow/go-eventbooking/internal/errs"
	"github.com/deppfellow/go-eventbooking/internal/lib/email"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/labstack/echo/v4"
)

// EmailHandler renders email templates with sample data so they can be
// checked in a browser. The route is only registered outside production.
type EmailHandler struct {
	Handler
}

func NewEmailHandler(s *server.Server) *EmailHandler {
	return &EmailHandler{Handler: NewHandler(s)}
}

func (h *EmailHandler) PreviewEmail(c echo.Context, req *model.PreviewEmailRequest) (string, error) {
	name := email.Template(req.Template)

	data, ok := email.PreviewData[name]
	if !ok {
		code := "TEMPLATE_NOT_FOUND"
		return "", errs.NewNotFoundError("Email template not found", true, &code)
	}

	return email.Render(name, data)
}
