// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/common"
	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/idem"
	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/matchmaker"
	matchfunctiongrpc "github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/pb"
	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/player"
)

const (
	defaultShipCountMin = 2
	defaultShipCountMax = 2

	// every submitted player is queued against this server pool
	defaultPlayerServer = "main"

	regionPreferenceAny = "any"
)

// MatchFunctionServer is the matchmaking-function RPC endpoint set. It is
// shared by all streams; everything session-scoped lives in a matchSession
// created per MakeMatches call.
type MatchFunctionServer struct {
	matchfunctiongrpc.UnimplementedMatchFunctionServer

	MatchSource MatchSource
	GameID      string
	PartyName   string
}

// matchSession is the state of one MakeMatches stream: the pending ticket
// buffer and the currently active batching thresholds.
type matchSession struct {
	shipCountMin     int
	shipCountMax     int
	unmatchedTickets []matchmaker.Ticket
	seenTicketIDs    map[string]struct{}
}

func newMatchSession() *matchSession {
	return &matchSession{
		shipCountMin:  defaultShipCountMin,
		shipCountMax:  defaultShipCountMax,
		seenTicketIDs: map[string]struct{}{},
	}
}

func (m *MatchFunctionServer) GetStatCodes(ctx context.Context, req *matchfunctiongrpc.GetStatCodesRequest) (*matchfunctiongrpc.StatCodesResponse, error) {
	scope := common.ChildScopeFromRemoteScope(ctx, "MatchFunctionServer.GetStatCodes")
	defer scope.Finish()

	scope.Log.Info("received get stat codes request")

	return &matchfunctiongrpc.StatCodesResponse{}, nil
}

func (m *MatchFunctionServer) ValidateTicket(ctx context.Context, req *matchfunctiongrpc.ValidateTicketRequest) (*matchfunctiongrpc.ValidateTicketResponse, error) {
	scope := common.ChildScopeFromRemoteScope(ctx, "MatchFunctionServer.ValidateTicket")
	defer scope.Finish()

	// policy hook, every ticket is allowed to queue for now
	scope.Log.Info("received validate ticket request")

	return &matchfunctiongrpc.ValidateTicketResponse{ValidTicket: true}, nil
}

func (m *MatchFunctionServer) EnrichTicket(ctx context.Context, req *matchfunctiongrpc.EnrichTicketRequest) (*matchfunctiongrpc.EnrichTicketResponse, error) {
	scope := common.ChildScopeFromRemoteScope(ctx, "MatchFunctionServer.EnrichTicket")
	defer scope.Finish()

	scope.Log.Info("received enrich ticket request")

	ticket := req.GetTicket()
	if ticket == nil {
		return nil, status.Error(codes.InvalidArgument, "no ticket provided")
	}

	if ticket.TicketAttributes == nil || len(ticket.TicketAttributes.Fields) == 0 {
		ticket.TicketAttributes = &structpb.Struct{Fields: map[string]*structpb.Value{
			"enrichedNumber": structpb.NewNumberValue(20),
		}}
	}

	return &matchfunctiongrpc.EnrichTicketResponse{Ticket: ticket}, nil
}

func (m *MatchFunctionServer) MakeMatches(server matchfunctiongrpc.MatchFunction_MakeMatchesServer) error {
	scope := common.NewRootScope(server.Context(), "MatchFunctionServer.MakeMatches", "")
	defer func() { scope.Finish() }()

	session := newMatchSession()

	for {
		in, err := server.Recv()
		if err == io.EOF {
			scope.Log.Infof("stream completed, unmatched ticket size: %d", len(session.unmatchedTickets))
			if len(session.unmatchedTickets) >= session.shipCountMin {
				return m.makeMatch(scope, session, server)
			}

			return nil
		}
		if err != nil {
			if ctxErr := server.Context().Err(); ctxErr != nil {
				// canceled stream, drop the buffer without a final round
				scope.Log.Infof("stream canceled, dropping %d unmatched tickets", len(session.unmatchedTickets))
				return ctxErr
			}
			scope.Log.Errorf("error receiving from stream: %v", err)

			return err
		}

		switch request := in.GetRequestType().(type) {
		case *matchfunctiongrpc.MakeMatchesRequest_Parameters:
			// the parameters frame may name the upstream trace; reroot the
			// session scope on it so every later round logs under that id
			if traceID := request.Parameters.GetScope().GetAbTraceId(); traceID != "" && traceID != scope.TraceID {
				scope.Finish()
				scope = common.NewRootScope(server.Context(), "MatchFunctionServer.MakeMatches", traceID)
			}
			if err := session.applyRules(scope, request.Parameters.GetRules()); err != nil {
				return err
			}
		case *matchfunctiongrpc.MakeMatchesRequest_Ticket:
			if !session.addTicket(scope, matchfunctiongrpc.ProtoTicketToMatchfunctionTicket(request.Ticket)) {
				continue
			}
			if len(session.unmatchedTickets) == session.shipCountMax {
				if err := m.makeMatch(scope, session, server); err != nil {
					return err
				}
			}
			scope.Log.Infof("unmatched ticket size: %d", len(session.unmatchedTickets))
		default:
			return status.Error(codes.InvalidArgument, "invalid request type")
		}
	}
}

// applyRules parses a rules JSON payload and updates the session thresholds.
// Malformed JSON fails the call; a well-formed payload with inconsistent
// values is ignored and the previous thresholds stay active.
func (s *matchSession) applyRules(scope *common.Scope, rules *matchfunctiongrpc.Rules) error {
	if rules == nil {
		return nil
	}

	ruleObject := &GameRules{}
	if err := json.Unmarshal([]byte(rules.Json), ruleObject); err != nil {
		scope.Log.Errorf("invalid rules json: %v", err)

		return status.Error(codes.InvalidArgument, "invalid rules json")
	}

	if ruleObject.ShipCountMin != 0 &&
		ruleObject.ShipCountMax != 0 &&
		ruleObject.ShipCountMin <= ruleObject.ShipCountMax {
		s.shipCountMin = ruleObject.ShipCountMin
		s.shipCountMax = ruleObject.ShipCountMax
	}
	scope.Log.Infof("updated shipCountMin: %d shipCountMax: %d", s.shipCountMin, s.shipCountMax)

	return nil
}

// addTicket appends a ticket to the pending buffer. Resubmitting a ticket id
// already pending in this session is rejected, not replaced.
func (s *matchSession) addTicket(scope *common.Scope, ticket matchmaker.Ticket) bool {
	if ticket.TicketID != "" {
		if _, seen := s.seenTicketIDs[ticket.TicketID]; seen {
			scope.Log.Warnf("duplicate ticket %s ignored", ticket.TicketID)

			return false
		}
		s.seenTicketIDs[ticket.TicketID] = struct{}{}
	}
	s.unmatchedTickets = append(s.unmatchedTickets, ticket)

	return true
}

// makeMatch runs one batching round: submit every pending player to the match
// source, fetch the current groupings, push one match per grouping, and clear
// the buffer. Match source failures fail the call; matches already written to
// the stream are not retracted.
func (m *MatchFunctionServer) makeMatch(scope *common.Scope, session *matchSession, server matchfunctiongrpc.MatchFunction_MakeMatchesServer) error {
	childScope := scope.NewChildScope("MatchFunctionServer.makeMatch")
	defer childScope.Finish()

	ctx := server.Context()

	token, err := m.MatchSource.Authenticate(ctx)
	if err != nil {
		childScope.Log.Errorf("match source authentication failed: %v", err)

		return status.Errorf(codes.Unavailable, "match source authentication failed: %s", err.Error())
	}

	players := make([]idem.Player, 0, len(session.unmatchedTickets))
	for _, unmatchedTicket := range session.unmatchedTickets {
		for _, p := range unmatchedTicket.Players {
			players = append(players, idem.Player{
				PlayerID: player.ToIDString(p),
				Servers:  []string{defaultPlayerServer},
			})
		}
	}

	if err := m.MatchSource.AddPlayers(ctx, token, m.GameID, m.PartyName, players); err != nil {
		childScope.Log.Errorf("failed to submit players to match source: %v", err)

		return status.Errorf(codes.Unavailable, "failed to submit players to match source: %s", err.Error())
	}

	payload, err := m.MatchSource.GetMatches(ctx, token, m.GameID)
	if err != nil {
		childScope.Log.Errorf("failed to fetch groupings from match source: %v", err)

		return status.Errorf(codes.Unavailable, "failed to fetch groupings from match source: %s", err.Error())
	}

	for _, grouping := range payload.Matches {
		teams := make([]matchmaker.Team, 0, len(grouping.Teams))
		for _, team := range grouping.Teams {
			userIDs := make([]player.ID, 0, len(team.Players))
			for _, p := range team.Players {
				userIDs = append(userIDs, player.IDFromString(p.PlayerID))
			}
			teams = append(teams, matchmaker.Team{UserIDs: userIDs})
		}

		match := matchmaker.Match{
			Tickets:          session.unmatchedTickets,
			Teams:            teams,
			RegionPreference: []string{regionPreferenceAny},
		}

		matchResponse := &matchfunctiongrpc.MatchResponse{
			Match: matchfunctiongrpc.MatchfunctionMatchToProtoMatch(match),
		}

		if err := server.Send(matchResponse); err != nil {
			childScope.Log.Errorf("error sending to stream: %v", err)

			return err
		}
		childScope.Log.Infof("created a match with %d teams", len(teams))
	}

	session.unmatchedTickets = make([]matchmaker.Ticket, 0)
	session.seenTicketIDs = map[string]struct{}{}

	return nil
}

// BackfillMatches is an echo placeholder: every inbound backfill ticket is
// answered with one proposal that names the ticket but adds nobody to it. No
// real backfill logic lives here yet.
func (m *MatchFunctionServer) BackfillMatches(server matchfunctiongrpc.MatchFunction_BackfillMatchesServer) error {
	scope := common.ChildScopeFromRemoteScope(server.Context(), "MatchFunctionServer.BackfillMatches")
	defer scope.Finish()

	for {
		in, err := server.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctxErr := server.Context().Err(); ctxErr != nil {
				return ctxErr
			}

			return err
		}

		proposal := matchmaker.BackfillProposal{CreatedAt: time.Now().UTC()}
		if protoTicket := in.GetBackfillTicket(); protoTicket != nil {
			ticket := matchfunctiongrpc.ProtoBackfillTicketToMatchfunctionBackfillTicket(protoTicket)
			proposal.BackfillTicketID = ticket.TicketID
			proposal.MatchPool = ticket.MatchPool
			proposal.MatchSessionID = ticket.MatchSessionID
		}

		response := &matchfunctiongrpc.BackfillResponse{
			BackfillProposal: matchfunctiongrpc.MatchfunctionBackfillProposalToProtoBackfillProposal(proposal),
		}
		if err := server.Send(response); err != nil {
			return err
		}
	}
}
