// internal/services/expert_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/internal/models"
)

// Expert is an advisory persona with a fixed sequence of scripted replies.
// Callers past the end of the script keep receiving the final reply.
type Expert struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Responses []string `json:"-"`
}

var experts = []Expert{
	{
		ID:        "dr_sharma",
		Name:      "Dr. Rajesh Sharma",
		Specialty: "Organic Farming Specialist",
		Responses: []string{
			"Hello! I'm Dr. Rajesh Sharma. How can I help you with organic farming today?",
			"That's a great question! For organic farming, I recommend starting with soil testing.",
			"Composting is key. Use kitchen waste, crop residue, and cow dung for best results.",
			"Crop rotation helps prevent soil depletion. Try alternating between legumes and cereals.",
			"Avoid chemical pesticides. Neem oil and garlic spray work great for pest control!",
			"For organic certification, contact your local agricultural office. It takes 2-3 years.",
			"Yes, organic farming is more profitable in the long term despite lower initial yields.",
		},
	},
	{
		ID:        "dr_patel",
		Name:      "Dr. Priya Patel",
		Specialty: "Soil Science Expert",
		Responses: []string{
			"Hi! I'm Dr. Priya Patel, soil science specialist. What would you like to know?",
			"Soil pH is crucial! Most crops prefer pH 6.0-7.0. Get a soil test done first.",
			"Add vermicompost to improve soil structure. It increases water retention by 40%!",
			"Green manure crops like dhaincha and sunhemp enrich soil with nitrogen naturally.",
			"Micronutrients matter! Apply zinc and boron based on soil test results.",
			"Avoid over-tilling. It destroys soil structure and beneficial microorganisms.",
			"Bio-fertilizers like Rhizobium and Azotobacter boost soil fertility organically.",
		},
	},
	{
		ID:        "prof_kumar",
		Name:      "Prof. Amit Kumar",
		Specialty: "Crop Management",
		Responses: []string{
			"Namaste! Professor Amit Kumar here. How can I assist with your crops?",
			"Intercropping increases yield by 20-30%. Try maize with beans or wheat with mustard.",
			"Drip irrigation saves 60% water compared to flood irrigation. Very cost-effective!",
			"Mulching reduces water evaporation and controls weeds. Use crop residue or plastic sheets.",
			"For better yields, maintain proper plant spacing. Overcrowding reduces productivity.",
			"Weather-based advisories are crucial. Check IMD forecasts before sowing.",
			"Harvest at the right time! Premature or late harvest reduces crop quality significantly.",
		},
	},
	{
		ID:        "dr_singh",
		Name:      "Dr. Vikram Singh",
		Specialty: "Pest Control Specialist",
		Responses: []string{
			"Hello! Dr. Vikram Singh here. Tell me about your pest problem.",
			"For aphids, spray neem oil solution (5ml/liter water) early morning.",
			"Yellow sticky traps work excellent for whiteflies. Place 8-10 traps per acre.",
			"Pheromone traps attract and capture moths. Very effective for tomato fruit borers.",
			"Bacillus thuringiensis (Bt) is an organic pesticide safe for beneficial insects.",
			"Companion planting helps! Marigold repels many pests naturally.",
			"IPM (Integrated Pest Management) combines multiple methods for best results.",
		},
	},
}

type ExpertService struct {
	db *gorm.DB
}

func NewExpertService(db *gorm.DB) *ExpertService {
	return &ExpertService{db: db}
}

func (s *ExpertService) ListExperts() []Expert {
	return experts
}

func (s *ExpertService) FindExpert(id string) (*Expert, error) {
	for i := range experts {
		if experts[i].ID == id {
			return &experts[i], nil
		}
	}
	return nil, ErrExpertNotFound
}

// StartSession opens a conversation and records the expert's greeting.
func (s *ExpertService) StartSession(userID uuid.UUID, expertID string) (*models.ChatSession, *models.ChatMessage, error) {
	expert, err := s.FindExpert(expertID)
	if err != nil {
		return nil, nil, err
	}

	session := &models.ChatSession{
		ExpertID: expert.ID,
		UserID:   userID,
	}

	greeting := &models.ChatMessage{
		Sender: models.ChatSenderExpert,
		Body:   expert.Responses[0],
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("failed to create chat session: %w", err)
		}
		greeting.SessionID = session.ID
		if err := tx.Create(greeting).Error; err != nil {
			return fmt.Errorf("failed to record greeting: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return session, greeting, nil
}

// SendMessage stores the user's message and answers with the next scripted
// reply for the session's expert.
func (s *ExpertService) SendMessage(sessionID, userID uuid.UUID, body string) (*models.ChatMessage, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrValidation)
	}

	var reply *models.ChatMessage

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var session models.ChatSession
		if err := tx.First(&session, "id = ? AND user_id = ?", sessionID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		expert, err := s.FindExpert(session.ExpertID)
		if err != nil {
			return err
		}

		userMsg := &models.ChatMessage{
			SessionID: session.ID,
			Sender:    models.ChatSenderUser,
			Body:      body,
		}
		if err := tx.Create(userMsg).Error; err != nil {
			return fmt.Errorf("failed to record message: %w", err)
		}

		session.MessageCount++
		if err := tx.Model(&session).Update("message_count", session.MessageCount).Error; err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}

		idx := session.MessageCount
		if idx > len(expert.Responses)-1 {
			idx = len(expert.Responses) - 1
		}

		reply = &models.ChatMessage{
			SessionID: session.ID,
			Sender:    models.ChatSenderExpert,
			Body:      expert.Responses[idx],
		}
		if err := tx.Create(reply).Error; err != nil {
			return fmt.Errorf("failed to record reply: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reply, nil
}

// SessionHistory returns a session with its messages in order.
func (s *ExpertService) SessionHistory(sessionID, userID uuid.UUID) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at asc")
	}).First(&session, "id = ? AND user_id = ?", sessionID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &session, nil
}
