// Package mailer gửi email thông báo cho admin qua SMTP.
// Tắt hoàn toàn khi SMTP_HOST không được cấu hình.
package mailer

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/Rohitsengar02/fixxev-api/config"
	"github.com/Rohitsengar02/fixxev-api/internal/logger"
)

// AdminMailer gửi email cho danh sách admin khi có notification dành cho admin
type AdminMailer struct {
	dialer      *gomail.Dialer
	from        string
	adminEmails []string
}

// NewAdminMailer tạo mailer từ config. Trả về nil khi SMTP không được cấu hình
// (tính năng optional, caller phải check nil).
func NewAdminMailer(cfg *config.Configuration) *AdminMailer {
	if cfg.SMTPHost == "" || cfg.AdminEmails == "" {
		return nil
	}

	emails := []string{}
	for _, e := range strings.Split(cfg.AdminEmails, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			emails = append(emails, e)
		}
	}
	if len(emails) == 0 {
		return nil
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}

	return &AdminMailer{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:        from,
		adminEmails: emails,
	}
}

// SendAdminNotification gửi email tới tất cả admin. Lỗi chỉ log, không trả về
// cho caller vì email admin là kênh best-effort.
func (m *AdminMailer) SendAdminNotification(title string, message string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("FixxEV <%s>", m.from))
	msg.SetHeader("To", m.adminEmails...)
	msg.SetHeader("Subject", title)
	msg.SetBody("text/html", fmt.Sprintf("<p>%s</p>", message))

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"title": title,
			"error": err.Error(),
		}).Warn("AdminMailer: gửi email thất bại, bỏ qua")
	}
}
