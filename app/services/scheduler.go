package services

import (
	"database/sql"
	"strings"
	"time"

	"github.com/JhonyKing/think-chess-sub001/pkg/utils"

	"go.uber.org/zap"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB, mailer Mailer) {
	go func() {
		log := utils.Logger()
		log.Info("Scheduler started")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 9:00 PM (21:00)
			if now.Hour() == 21 && now.Minute() == 0 {
				log.Info("Triggering scheduled tasks [21:00]")

				if err := SendPaymentReminders(db, mailer); err != nil {
					log.Error("payment reminder pass failed", zap.Error(err))
				}
			}
		}
	}()
}

// SendPaymentReminders emails every unsettled, unnotified payment's student
// using the payment_reminder template, then marks the payment notified. A
// single failed send skips that payment and continues; it is retried on the
// next pass because the flag stays false.
func SendPaymentReminders(db *sql.DB, mailer Mailer) error {
	log := utils.Logger()

	var subject, body string
	var enabled bool
	err := db.QueryRow(`SELECT subject, body, enabled FROM mail_templates
			WHERE key = 'payment_reminder' AND deleted_at IS NULL`).
		Scan(&subject, &body, &enabled)
	if err != nil {
		return err
	}
	if !enabled {
		log.Info("payment_reminder template disabled, skipping pass")
		return nil
	}

	rows, err := db.Query(`
		SELECT p.receipt_number, p.month_paid, st.email
		FROM payments p
		JOIN students st ON p.student_id = st.id
		WHERE p.settled = false AND p.notified = false AND p.deleted_at IS NULL
		  AND st.email IS NOT NULL AND st.email <> ''`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type reminder struct {
		receipt int
		month   string
		email   string
	}
	var pending []reminder
	for rows.Next() {
		var r reminder
		if err := rows.Scan(&r.receipt, &r.month, &r.email); err != nil {
			return err
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, r := range pending {
		text := strings.ReplaceAll(body, "{{month}}", r.month)
		_, err := mailer.Send(&OutboundMail{
			To:      []string{r.email},
			Subject: subject,
			Text:    text,
		})
		if err != nil {
			log.Error("reminder send failed",
				zap.Int("receipt_number", r.receipt),
				zap.Error(err))
			continue
		}

		if _, err := db.Exec(`UPDATE payments SET notified = true, updated_at = NOW()
				WHERE receipt_number = $1`, r.receipt); err != nil {
			log.Error("failed to mark payment notified",
				zap.Int("receipt_number", r.receipt),
				zap.Error(err))
		}
	}

	log.Info("payment reminder pass finished", zap.Int("pending", len(pending)))
	return nil
}
