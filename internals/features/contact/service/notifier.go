package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"riseacademy_backend/internals/configs"
	"riseacademy_backend/internals/features/contact/model"
)

// Notifier delivers the new-inquiry notification to the admissions inbox.
// Delivery is best effort; callers log failures and move on.
type Notifier interface {
	NotifyNewInquiry(ctx context.Context, sub *model.ContactSubmissionModel) error
}

// NewNotifierFromEnv picks the implementation from NOTIFY_DRIVER
// (sendgrid | console, default console).
func NewNotifierFromEnv() Notifier {
	switch strings.ToLower(configs.NotifyDriver) {
	case "sendgrid":
		return &SendgridNotifier{
			APIKey:    configs.SendgridAPIKey,
			FromEmail: configs.GetEnv("NOTIFY_FROM_EMAIL", "no-reply@riseacademy.edu"),
			FromName:  configs.GetEnv("NOTIFY_FROM_NAME", "Rise Academy Website"),
			ToEmail:   configs.AdminEmail,
		}
	default:
		return &ConsoleNotifier{}
	}
}

type SendgridNotifier struct {
	APIKey    string
	FromEmail string
	FromName  string
	ToEmail   string
}

func (n *SendgridNotifier) NotifyNewInquiry(ctx context.Context, sub *model.ContactSubmissionModel) error {
	if n.APIKey == "" || n.ToEmail == "" {
		return fmt.Errorf("sendgrid notifier: missing SENDGRID_API_KEY or ADMIN_EMAIL")
	}

	from := mail.NewEmail(n.FromName, n.FromEmail)
	to := mail.NewEmail("Admissions", n.ToEmail)
	subject := fmt.Sprintf("New inquiry from %s", sub.ContactParentName)
	plain := inquiryBody(sub)
	message := mail.NewSingleEmail(from, subject, to, plain, "<pre>"+plain+"</pre>")

	client := sendgrid.NewSendClient(n.APIKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid notifier: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid notifier: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// ConsoleNotifier logs the inquiry instead of emailing it. Development default.
type ConsoleNotifier struct{}

func (n *ConsoleNotifier) NotifyNewInquiry(_ context.Context, sub *model.ContactSubmissionModel) error {
	log.Printf("[INFO] new inquiry (console notifier):\n%s", inquiryBody(sub))
	return nil
}

func inquiryBody(sub *model.ContactSubmissionModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parent name: %s\n", sub.ContactParentName)
	fmt.Fprintf(&b, "Email: %s\n", sub.ContactEmail)
	if sub.ContactPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.ContactPhone)
	}
	if sub.ContactStudentName != "" {
		fmt.Fprintf(&b, "Student: %s\n", sub.ContactStudentName)
	}
	if sub.ContactGradeLevel != "" {
		fmt.Fprintf(&b, "Grade level: %s\n", sub.ContactGradeLevel)
	}
	if sub.ContactMessage != "" {
		fmt.Fprintf(&b, "Message:\n%s\n", sub.ContactMessage)
	}
	return b.String()
}
