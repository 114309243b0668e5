// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/idem"
	matchfunctiongrpc "github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/pb"
)

// matchSourceStub stands in for the Idem client. By default it groups every
// call into the single grouping set in matches.
type matchSourceStub struct {
	authCalls    int
	authErr      error
	addPlayerErr error
	getMatchErr  error

	addedRosters [][]idem.Player
	matches      []idem.MatchResult
}

func (s *matchSourceStub) Authenticate(ctx context.Context) (string, error) {
	s.authCalls++
	if s.authErr != nil {
		return "", s.authErr
	}

	return "stub-token", nil
}

func (s *matchSourceStub) AddPlayers(ctx context.Context, token string, gameID string, partyName string, players []idem.Player) error {
	if s.addPlayerErr != nil {
		return s.addPlayerErr
	}
	s.addedRosters = append(s.addedRosters, players)

	return nil
}

func (s *matchSourceStub) GetMatches(ctx context.Context, token string, gameID string) (*idem.MatchPayload, error) {
	if s.getMatchErr != nil {
		return nil, s.getMatchErr
	}

	return &idem.MatchPayload{GameID: gameID, Matches: s.matches}, nil
}

// makeMatchesStreamStub feeds a fixed request sequence into MakeMatches and
// captures everything the handler sends back. Once the queue is drained Recv
// reports recvErr when set, io.EOF otherwise.
type makeMatchesStreamStub struct {
	grpc.ServerStream
	ctx       context.Context
	requests  []*matchfunctiongrpc.MakeMatchesRequest
	recvErr   error
	responses []*matchfunctiongrpc.MatchResponse
}

func newMakeMatchesStreamStub(ctx context.Context, requests ...*matchfunctiongrpc.MakeMatchesRequest) *makeMatchesStreamStub {
	return &makeMatchesStreamStub{ctx: ctx, requests: requests}
}

func (s *makeMatchesStreamStub) Context() context.Context {
	return s.ctx
}

func (s *makeMatchesStreamStub) Send(response *matchfunctiongrpc.MatchResponse) error {
	s.responses = append(s.responses, response)

	return nil
}

func (s *makeMatchesStreamStub) Recv() (*matchfunctiongrpc.MakeMatchesRequest, error) {
	if len(s.requests) == 0 {
		if s.recvErr != nil {
			return nil, s.recvErr
		}

		return nil, io.EOF
	}
	request := s.requests[0]
	s.requests = s.requests[1:]

	return request, nil
}

type backfillStreamStub struct {
	grpc.ServerStream
	ctx       context.Context
	requests  []*matchfunctiongrpc.BackfillMakeMatchesRequest
	responses []*matchfunctiongrpc.BackfillResponse
}

func (s *backfillStreamStub) Context() context.Context {
	return s.ctx
}

func (s *backfillStreamStub) Send(response *matchfunctiongrpc.BackfillResponse) error {
	s.responses = append(s.responses, response)

	return nil
}

func (s *backfillStreamStub) Recv() (*matchfunctiongrpc.BackfillMakeMatchesRequest, error) {
	if len(s.requests) == 0 {
		return nil, io.EOF
	}
	request := s.requests[0]
	s.requests = s.requests[1:]

	return request, nil
}

func newTestServer(source *matchSourceStub) *MatchFunctionServer {
	return &MatchFunctionServer{
		MatchSource: source,
		GameID:      "1v1",
		PartyName:   "party1",
	}
}

func rulesRequest(rulesJSON string) *matchfunctiongrpc.MakeMatchesRequest {
	return &matchfunctiongrpc.MakeMatchesRequest{
		RequestType: &matchfunctiongrpc.MakeMatchesRequest_Parameters{
			Parameters: &matchfunctiongrpc.MakeMatchesRequest_MakeMatchesParameters{
				Rules: &matchfunctiongrpc.Rules{Json: rulesJSON},
			},
		},
	}
}

func ticketRequest(ticketID string, playerIDs ...string) *matchfunctiongrpc.MakeMatchesRequest {
	players := make([]*matchfunctiongrpc.Ticket_PlayerData, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		players = append(players, &matchfunctiongrpc.Ticket_PlayerData{PlayerId: playerID})
	}

	return &matchfunctiongrpc.MakeMatchesRequest{
		RequestType: &matchfunctiongrpc.MakeMatchesRequest_Ticket{
			Ticket: &matchfunctiongrpc.Ticket{TicketId: ticketID, Players: players},
		},
	}
}

func singleGrouping(playerIDs ...string) []idem.MatchResult {
	teams := make([]idem.TeamResult, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		teams = append(teams, idem.TeamResult{Players: []idem.PlayerResult{{PlayerID: playerID}}})
	}

	return []idem.MatchResult{{UUID: "grouping-1", Teams: teams}}
}

func TestGetStatCodes(t *testing.T) {
	// prepare
	server := newTestServer(&matchSourceStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// act
	response, err := server.GetStatCodes(ctx, &matchfunctiongrpc.GetStatCodesRequest{
		Rules: &matchfunctiongrpc.Rules{Json: "{}"},
	})

	// assert
	assert.Nil(t, err)
	require.NotNil(t, response)
	assert.Empty(t, response.Codes)
}

func TestValidateTicket(t *testing.T) {
	// prepare
	server := newTestServer(&matchSourceStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// act
	response, err := server.ValidateTicket(ctx, &matchfunctiongrpc.ValidateTicketRequest{
		Ticket: &matchfunctiongrpc.Ticket{TicketId: "ticket-1"},
		Rules:  &matchfunctiongrpc.Rules{Json: "{}"},
	})

	// assert
	assert.Nil(t, err)
	require.NotNil(t, response)
	assert.True(t, response.ValidTicket)
}

func TestEnrichTicketAddsDefaultAttributes(t *testing.T) {
	// prepare
	server := newTestServer(&matchSourceStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// act
	response, err := server.EnrichTicket(ctx, &matchfunctiongrpc.EnrichTicketRequest{
		Ticket: &matchfunctiongrpc.Ticket{TicketId: "ticket-1"},
	})

	// assert
	assert.Nil(t, err)
	require.NotNil(t, response)
	require.NotNil(t, response.Ticket.TicketAttributes)
	value, ok := response.Ticket.TicketAttributes.Fields["enrichedNumber"]
	require.True(t, ok)
	assert.Equal(t, float64(20), value.GetNumberValue())
}

func TestEnrichTicketKeepsExistingAttributes(t *testing.T) {
	// prepare
	server := newTestServer(&matchSourceStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticket := &matchfunctiongrpc.Ticket{TicketId: "ticket-1"}
	original, err := server.EnrichTicket(ctx, &matchfunctiongrpc.EnrichTicketRequest{Ticket: ticket})
	require.Nil(t, err)

	// act
	again, err := server.EnrichTicket(ctx, &matchfunctiongrpc.EnrichTicketRequest{Ticket: original.Ticket})

	// assert
	assert.Nil(t, err)
	assert.Equal(t, original.Ticket.TicketAttributes.Fields, again.Ticket.TicketAttributes.Fields)
}

func TestEnrichTicketNoTicket(t *testing.T) {
	// prepare
	server := newTestServer(&matchSourceStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// act
	_, err := server.EnrichTicket(ctx, &matchfunctiongrpc.EnrichTicketRequest{})

	// assert
	require.NotNil(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMakeMatchesFiresOnThreshold(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1", "p2")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx,
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	require.Len(t, stream.responses, 1)
	match := stream.responses[0].Match
	require.NotNil(t, match)
	require.Len(t, match.Teams, 2)
	assert.Equal(t, []string{"p1"}, match.Teams[0].UserIds)
	assert.Equal(t, []string{"p2"}, match.Teams[1].UserIds)
	assert.Len(t, match.Tickets, 2)
	assert.Equal(t, []string{"any"}, match.RegionPreferences)

	require.Len(t, source.addedRosters, 1)
	require.Len(t, source.addedRosters[0], 2)
	assert.Equal(t, "p1", source.addedRosters[0][0].PlayerID)
	assert.Equal(t, []string{"main"}, source.addedRosters[0][0].Servers)
}

func TestMakeMatchesFinalRoundOnStreamEnd(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1", "p2")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// min 2, max 3: two tickets sit below the trigger until the stream ends
	stream := newMakeMatchesStreamStub(ctx,
		rulesRequest(`{"shipCountMin":2,"shipCountMax":3}`),
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	assert.Len(t, stream.responses, 1)
	assert.Len(t, source.addedRosters, 1)
}

func TestMakeMatchesNoFinalRoundBelowMinimum(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx, ticketRequest("ticket-1", "p1"))

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	assert.Empty(t, stream.responses)
	assert.Zero(t, source.authCalls)
}

func TestMakeMatchesMalformedRules(t *testing.T) {
	// prepare
	server := newTestServer(&matchSourceStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx, rulesRequest("not json"))

	// act
	err := server.MakeMatches(stream)

	// assert
	require.NotNil(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMakeMatchesIgnoresInconsistentRules(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1", "p2")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// min above max is ignored, the default threshold of 2 stays active
	stream := newMakeMatchesStreamStub(ctx,
		rulesRequest(`{"shipCountMin":5,"shipCountMax":3}`),
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	assert.Len(t, stream.responses, 1)
}

func TestMakeMatchesIgnoresZeroRuleValues(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1", "p2")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// zero counts are ignored, the default threshold of 2 stays active
	stream := newMakeMatchesStreamStub(ctx,
		rulesRequest(`{"shipCountMin":0,"shipCountMax":0}`),
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	assert.Len(t, stream.responses, 1)
}

func TestMakeMatchesIgnoresUnknownRuleFields(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1", "p2")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx,
		rulesRequest(`{"shipCountMin":2,"shipCountMax":2,"alliance":{"min_number":1},"auto_backfill":true}`),
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	assert.Len(t, stream.responses, 1)
}

func TestMakeMatchesCanceledStreamDropsBuffer(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1", "p2")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())

	// min 2, max 3: both tickets sit in the buffer when the stream breaks
	stream := newMakeMatchesStreamStub(ctx,
		rulesRequest(`{"shipCountMin":2,"shipCountMax":3}`),
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)
	stream.recvErr = errors.New("rpc error: context canceled")
	cancel()

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Equal(t, context.Canceled, err)
	assert.Empty(t, stream.responses)
	assert.Zero(t, source.authCalls)
	assert.Empty(t, source.addedRosters)
}

func TestMakeMatchesRejectsDuplicateTicket(t *testing.T) {
	// prepare
	source := &matchSourceStub{matches: singleGrouping("p1", "p2")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx,
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	require.Len(t, stream.responses, 1)
	require.Len(t, source.addedRosters, 1)
	assert.Len(t, source.addedRosters[0], 2)
}

func TestMakeMatchesBufferClearedAfterRound(t *testing.T) {
	// prepare
	// empty grouping list still clears the buffer, so the next two tickets
	// form a fresh batch instead of piling onto the old one
	source := &matchSourceStub{}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx,
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
		ticketRequest("ticket-3", "p3"),
		ticketRequest("ticket-4", "p4"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	assert.Nil(t, err)
	assert.Empty(t, stream.responses)
	require.Len(t, source.addedRosters, 2)
	assert.Len(t, source.addedRosters[0], 2)
	assert.Len(t, source.addedRosters[1], 2)
}

func TestMakeMatchesMatchSourceUnavailable(t *testing.T) {
	// prepare
	source := &matchSourceStub{getMatchErr: errors.New("connection refused")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx,
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	require.NotNil(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestMakeMatchesAuthFailure(t *testing.T) {
	// prepare
	source := &matchSourceStub{authErr: errors.New("bad credentials")}
	server := newTestServer(source)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newMakeMatchesStreamStub(ctx,
		ticketRequest("ticket-1", "p1"),
		ticketRequest("ticket-2", "p2"),
	)

	// act
	err := server.MakeMatches(stream)

	// assert
	require.NotNil(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Empty(t, source.addedRosters)
}

func TestBackfillMatchesEchoesProposals(t *testing.T) {
	// prepare
	server := newTestServer(&matchSourceStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := &backfillStreamStub{
		ctx: ctx,
		requests: []*matchfunctiongrpc.BackfillMakeMatchesRequest{
			{
				RequestType: &matchfunctiongrpc.BackfillMakeMatchesRequest_BackfillTicket{
					BackfillTicket: &matchfunctiongrpc.BackfillTicket{
						TicketId:  "backfill-1",
						MatchPool: "pool-1",
					},
				},
			},
			{},
		},
	}

	// act
	err := server.BackfillMatches(stream)

	// assert
	assert.Nil(t, err)
	require.Len(t, stream.responses, 2)
	require.NotNil(t, stream.responses[0].BackfillProposal)
	assert.Equal(t, "backfill-1", stream.responses[0].BackfillProposal.BackfillTicketId)
	assert.Equal(t, "pool-1", stream.responses[0].BackfillProposal.MatchPool)
	assert.Empty(t, stream.responses[0].BackfillProposal.ProposedTeams)
	require.NotNil(t, stream.responses[1].BackfillProposal)
}
