package notification

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/candishared"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/tracer"
)

// Invitation data needed to send invitation email
type Invitation struct {
	WeddingID   string
	WeddingName string
	Email       string
	Name        string
	Role        string
	InvitedBy   string
}

// InvitationMessage event payload consumed by mailer service
type InvitationMessage struct {
	WeddingID   string `json:"weddingId"`
	WeddingName string `json:"weddingName,omitempty"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role"`
	InvitedBy   string `json:"invitedBy"`
	JoinLink    string `json:"joinLink"`
	Code        string `json:"code"`
}

// InvitationSender send invitation to email address with join link and code
type InvitationSender interface {
	SendInvitation(ctx context.Context, invitation Invitation) error
}

type publisherSender struct {
	publisher  interfaces.Publisher
	topic      string
	appBaseURL string
}

// NewPublisherSender sender publish invitation message to broker topic
func NewPublisherSender(publisher interfaces.Publisher, topic, appBaseURL string) InvitationSender {
	return &publisherSender{
		publisher:  publisher,
		topic:      topic,
		appBaseURL: strings.TrimSuffix(appBaseURL, "/"),
	}
}

// BuildInvitationMessage join code is the wedding id
func BuildInvitationMessage(appBaseURL string, invitation Invitation) InvitationMessage {
	return InvitationMessage{
		WeddingID:   invitation.WeddingID,
		WeddingName: invitation.WeddingName,
		Email:       invitation.Email,
		Name:        invitation.Name,
		Role:        invitation.Role,
		InvitedBy:   invitation.InvitedBy,
		JoinLink:    strings.TrimSuffix(appBaseURL, "/") + "/join/" + invitation.WeddingID,
		Code:        invitation.WeddingID,
	}
}

func (s *publisherSender) SendInvitation(ctx context.Context, invitation Invitation) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationSender:SendInvitation")
	defer func() { trace.SetError(err); trace.Finish() }()

	message, err := json.Marshal(BuildInvitationMessage(s.appBaseURL, invitation))
	if err != nil {
		return err
	}
	trace.SetTag("topic", s.topic)

	return s.publisher.PublishMessage(ctx, &candishared.PublisherArgument{
		Topic:       s.topic,
		Key:         invitation.WeddingID,
		ContentType: candihelper.HeaderMIMEApplicationJSON,
		Message:     message,
	})
}

type noopSender struct{}

// NewNoopSender sender used when no notification broker is configured
func NewNoopSender() InvitationSender {
	return noopSender{}
}

func (noopSender) SendInvitation(ctx context.Context, invitation Invitation) error {
	return nil
}

// DependencyKey extended dependency key of the configured InvitationSender
const DependencyKey = "invitation_sender"
