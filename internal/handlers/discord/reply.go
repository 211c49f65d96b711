package discord

import (
	"errors"
	"sync"

	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_responder.go github.com/KirkDiggler/boxbox/internal/handlers/discord Responder

// ErrAlreadyReplied is returned when an interaction already has its reply
var ErrAlreadyReplied = errors.New("interaction already replied to")

// Responder is the part of *discordgo.Session used to answer interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Message is the content of a reply
type Message struct {
	Content   string
	Embeds    []*discordgo.MessageEmbed
	Files     []*discordgo.File
	Ephemeral bool
}

// reply makes sure an interaction gets exactly one visible message.
// Before a defer the message is the interaction response, after it a followup.
type reply struct {
	mu          sync.Mutex
	responder   Responder
	interaction *discordgo.Interaction
	deferred    bool
	sent        bool
}

func newReply(responder Responder, interaction *discordgo.Interaction) *reply {
	return &reply{
		responder:   responder,
		interaction: interaction,
	}
}

// Defer acknowledges the interaction so the reply can take longer than three seconds
func (r *reply) Defer() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sent || r.deferred {
		return ErrAlreadyReplied
	}

	if err := r.responder.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		return err
	}

	r.deferred = true
	return nil
}

// Send delivers the one message of the interaction
func (r *reply) Send(msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sent {
		return ErrAlreadyReplied
	}
	// Failed sends are not retried
	r.sent = true

	var flags discordgo.MessageFlags
	if msg.Ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	if r.deferred {
		_, err := r.responder.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content: msg.Content,
			Embeds:  msg.Embeds,
			Files:   msg.Files,
			Flags:   flags,
		})
		return err
	}

	return r.responder.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg.Content,
			Embeds:  msg.Embeds,
			Files:   msg.Files,
			Flags:   flags,
		},
	})
}

// Sent reports whether the message went out, or was attempted
func (r *reply) Sent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sent
}
