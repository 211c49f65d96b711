package discord

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/boxbox/internal/handlers/discord/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReplyTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockResponder *mocks.MockResponder
	interaction   *discordgo.Interaction
	reply         *reply
}

func TestReplyTestSuite(t *testing.T) {
	suite.Run(t, new(ReplyTestSuite))
}

func (s *ReplyTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockResponder = mocks.NewMockResponder(s.mockCtrl)
	s.interaction = &discordgo.Interaction{ID: "interaction-1"}
	s.reply = newReply(s.mockResponder, s.interaction)
}

func (s *ReplyTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReplyTestSuite) TestSendWithoutDeferResponds() {
	s.mockResponder.EXPECT().
		InteractionRespond(s.interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
			s.Equal("hello", resp.Data.Content)
			s.Zero(resp.Data.Flags)
			return nil
		}).
		Times(1)

	s.Require().NoError(s.reply.Send(&Message{Content: "hello"}))
	s.True(s.reply.Sent())
}

func (s *ReplyTestSuite) TestSendAfterDeferUsesFollowup() {
	gomock.InOrder(
		s.mockResponder.EXPECT().
			InteractionRespond(s.interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			}).
			Return(nil),
		s.mockResponder.EXPECT().
			FollowupMessageCreate(s.interaction, true, &discordgo.WebhookParams{Content: "done"}).
			Return(&discordgo.Message{}, nil),
	)

	s.Require().NoError(s.reply.Defer())
	s.False(s.reply.Sent())
	s.Require().NoError(s.reply.Send(&Message{Content: "done"}))
}

func (s *ReplyTestSuite) TestSecondSendIsRefused() {
	s.mockResponder.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	s.Require().NoError(s.reply.Send(&Message{Content: "first"}))
	s.ErrorIs(s.reply.Send(&Message{Content: "second"}), ErrAlreadyReplied)
	s.ErrorIs(s.reply.Defer(), ErrAlreadyReplied)
}

func (s *ReplyTestSuite) TestFailedSendIsNotRetried() {
	s.mockResponder.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		Return(errors.New("rate limited")).
		Times(1)

	s.Error(s.reply.Send(&Message{Content: "first"}))
	s.True(s.reply.Sent())
	s.ErrorIs(s.reply.Send(&Message{Content: "again"}), ErrAlreadyReplied)
}

func (s *ReplyTestSuite) TestDeferTwiceIsRefused() {
	s.mockResponder.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	s.Require().NoError(s.reply.Defer())
	s.ErrorIs(s.reply.Defer(), ErrAlreadyReplied)
}

func (s *ReplyTestSuite) TestEphemeralFlag() {
	s.mockResponder.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			return nil
		})

	s.Require().NoError(s.reply.Send(&Message{Content: "only you", Ephemeral: true}))
}
