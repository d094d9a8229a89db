package mail

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/services"
	"github.com/JhonyKing/think-chess-sub001/app/validate"

	"github.com/gofiber/fiber/v2"
)

// mailer is set by SetupMailRoutes; tests swap in a stub.
var mailer services.Mailer

func MailPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("mail/index", fiber.Map{
		"Title":       "Notificaciones",
		"CurrentPage": "mail",
		"user":        user,
	})
}

// SendMailAPI validates the payload and performs one dispatch round trip.
// Validation failures come back as 400 with the field-level error list;
// they never crash the process.
func SendMailAPI(c *fiber.Ctx) error {
	var req validate.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	result := validate.Email(&req)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	mail := &services.OutboundMail{
		To:      []string(req.To),
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	}
	for _, att := range req.Attachments {
		content, err := validate.DecodeContent(att.Content)
		if err != nil {
			// The validator already decoded this; only a race with a
			// mutated request body gets here.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "attachment content is not valid base64",
			})
		}
		mail.Attachments = append(mail.Attachments, services.MailAttachment{
			Filename:    att.Filename,
			ContentType: att.ContentType,
			Content:     content,
		})
	}

	messageID, err := mailer.Send(mail)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{
			"success": false,
			"message": "No se pudo enviar el correo",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message_id": messageID,
	})
}

// Template configuration handlers

func GetTemplatesAPI(c *fiber.Ctx) error {
	rows, err := config.GetDB().Query(`SELECT id, key, subject, body, enabled, created_at, updated_at
			FROM mail_templates WHERE deleted_at IS NULL ORDER BY key`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar las plantillas"})
	}
	defer rows.Close()

	templates := []*models.MailTemplate{}
	for rows.Next() {
		t := &models.MailTemplate{}
		if err := rows.Scan(&t.ID, &t.Key, &t.Subject, &t.Body, &t.Enabled, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar las plantillas"})
		}
		templates = append(templates, t)
	}

	return c.JSON(templates)
}

func UpdateTemplateAPI(c *fiber.Ctx) error {
	key := c.Params("key")
	if !models.ValidTemplateKey(key) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Plantilla desconocida"})
	}

	var t models.MailTemplate
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(t.Subject) == "" || len(t.Subject) > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El asunto debe tener entre 1 y 200 caracteres"})
	}
	if strings.TrimSpace(t.Body) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El cuerpo de la plantilla es obligatorio"})
	}

	t.Key = models.MailTemplateKey(key)
	query := `UPDATE mail_templates
			  SET subject = $1, body = $2, enabled = $3, updated_at = NOW()
			  WHERE key = $4 AND deleted_at IS NULL
			  RETURNING id, created_at, updated_at`
	err := config.GetDB().QueryRow(query, t.Subject, t.Body, t.Enabled, key).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": database.ErrNotFound.Error()})
		}
		mapped := database.MapError(err, "No se pudo actualizar la plantilla")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}

	return c.JSON(t)
}
