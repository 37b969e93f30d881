package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

var (
	ErrEmptyMessageBody  = errors.New("empty message body")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSelfMessage       = errors.New("cannot message yourself")
)

const maxMessageBodyLength = 4000

type MessageRepositoryPort interface {
	Create(message *models.Message) error
	ListConversation(userID uint, partnerID uint) ([]models.Message, error)
	ListPartners(userID uint) ([]uint, error)
	MarkConversationRead(userID uint, partnerID uint, now time.Time) error
}

type MessageService struct {
	messages MessageRepositoryPort
	users    AuthUserRepository
}

func NewMessageService(messages MessageRepositoryPort, users AuthUserRepository) *MessageService {
	return &MessageService{messages: messages, users: users}
}

func (service *MessageService) Send(senderID uint, recipientID uint, body string) (models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" || len(body) > maxMessageBodyLength {
		return models.Message{}, ErrEmptyMessageBody
	}
	if senderID == recipientID {
		return models.Message{}, ErrSelfMessage
	}

	if _, err := service.users.FindByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Message{}, ErrRecipientNotFound
		}
		return models.Message{}, err
	}

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := service.messages.Create(&message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// Conversation returns the full two-way thread and marks the partner's
// messages as read.
func (service *MessageService) Conversation(userID uint, partnerID uint) ([]models.Message, error) {
	messages, err := service.messages.ListConversation(userID, partnerID)
	if err != nil {
		return nil, err
	}
	if err := service.messages.MarkConversationRead(userID, partnerID, time.Now()); err != nil {
		return nil, err
	}
	return messages, nil
}

func (service *MessageService) ConversationPartners(userID uint) ([]uint, error) {
	return service.messages.ListPartners(userID)
}
