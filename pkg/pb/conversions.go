// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchfunction

import (
	pie_ "github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/matchmaker"
	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/player"
)

// MatchfunctionTicketToProtoTicket will convert a matchmaker ticket to a proto ticket
func MatchfunctionTicketToProtoTicket(ticket matchmaker.Ticket) *Ticket {
	// convert ticket attributes to proto struct
	ticketAttrs, err := structpb.NewStruct(ticket.TicketAttributes)
	if err != nil {
		logrus.Errorf("error on structpb for ticket attributes")
	}

	return &Ticket{
		TicketId:  ticket.TicketID,
		MatchPool: ticket.MatchPool,
		CreatedAt: timestamppb.New(ticket.CreatedAt),
		Players: pie_.Map(ticket.Players, func(p player.PlayerData) *Ticket_PlayerData {
			playerAttrs, paErr := structpb.NewStruct(p.Attributes)
			if paErr != nil {
				logrus.Errorf("failed to create new proto struct for player attributes")
			}
			return &Ticket_PlayerData{
				PlayerId:   player.IDToString(p.PlayerID),
				Attributes: playerAttrs,
			}
		}),
		TicketAttributes: ticketAttrs,
		Latencies:        ticket.Latencies,
		PartySessionId:   ticket.PartySessionID,
		Namespace:        ticket.Namespace,
	}
}

// ProtoTicketToMatchfunctionTicket will convert a proto ticket to a matchmaker ticket
func ProtoTicketToMatchfunctionTicket(ticket *Ticket) matchmaker.Ticket {
	return matchmaker.Ticket{
		TicketID:  ticket.TicketId,
		MatchPool: ticket.MatchPool,
		CreatedAt: ticket.CreatedAt.AsTime(),
		Players: pie_.Map(ticket.Players, func(p *Ticket_PlayerData) player.PlayerData {
			return player.PlayerData{
				PlayerID:   player.IDFromString(p.PlayerId),
				Attributes: p.Attributes.AsMap(),
			}
		}),
		TicketAttributes: ticket.TicketAttributes.AsMap(),
		Latencies:        ticket.Latencies,
		PartySessionID:   ticket.PartySessionId,
		Namespace:        ticket.Namespace,
	}
}

// ProtoMatchToMatchfunctionMatch will convert a proto match to a matchmaker match
func ProtoMatchToMatchfunctionMatch(match *Match) matchmaker.Match {
	return matchmaker.Match{
		Tickets: pie_.Map(match.Tickets, func(m *Ticket) matchmaker.Ticket {
			return ProtoTicketToMatchfunctionTicket(m)
		}),
		Teams: pie_.Map(match.Teams, func(team *Match_Team) matchmaker.Team {
			return matchmaker.Team{UserIDs: pie_.Map(team.UserIds, func(p string) player.ID {
				return player.ID(p)
			})}
		}),
		RegionPreference: match.RegionPreferences,
		MatchAttributes:  match.MatchAttributes.AsMap(),
		Backfill:         match.Backfill,
		ServerName:       match.ServerName,
		ClientVersion:    match.ClientVersion,
	}
}

// MatchfunctionMatchToProtoMatch will convert a matchmaker match to a proto match
func MatchfunctionMatchToProtoMatch(match matchmaker.Match) *Match {
	matchAttrs, mErr := structpb.NewStruct(match.MatchAttributes)
	if mErr != nil {
		logrus.Errorf("error on structpb for match attributes")
	}
	return &Match{
		Tickets: pie_.Map(match.Tickets, func(ticket matchmaker.Ticket) *Ticket {
			return MatchfunctionTicketToProtoTicket(ticket)
		}),
		Teams: pie_.Map(match.Teams, func(team matchmaker.Team) *Match_Team {
			return &Match_Team{UserIds: pie_.Map(team.UserIDs, func(x player.ID) string {
				return player.IDToString(x)
			})}
		}),
		RegionPreferences: match.RegionPreference,
		MatchAttributes:   matchAttrs,
		Backfill:          match.Backfill,
		ServerName:        match.ServerName,
		ClientVersion:     match.ClientVersion,
	}
}

// ProtoBackfillTicketToMatchfunctionBackfillTicket will convert a proto backfill ticket to a matchmaker backfill ticket
func ProtoBackfillTicketToMatchfunctionBackfillTicket(backfillTicket *BackfillTicket) matchmaker.BackfillTicket {
	partial := backfillTicket.GetPartialMatch()
	var partialMatch matchmaker.Match
	if partial != nil {
		partialMatch = matchmaker.Match{
			Tickets: pie_.Map(partial.Tickets, func(m *Ticket) matchmaker.Ticket {
				return ProtoTicketToMatchfunctionTicket(m)
			}),
			Teams: pie_.Map(partial.Teams, func(team *BackfillTicket_Team) matchmaker.Team {
				return matchmaker.Team{UserIDs: pie_.Map(team.UserIds, func(p string) player.ID {
					return player.ID(p)
				})}
			}),
			RegionPreference: partial.RegionPreferences,
			MatchAttributes:  partial.MatchAttributes.AsMap(),
			Backfill:         partial.Backfill,
			ServerName:       partial.ServerName,
			ClientVersion:    partial.ClientVersion,
		}
	}
	return matchmaker.BackfillTicket{
		TicketID:       backfillTicket.TicketId,
		MatchPool:      backfillTicket.MatchPool,
		CreatedAt:      backfillTicket.CreatedAt.AsTime(),
		PartialMatch:   partialMatch,
		MatchSessionID: backfillTicket.MatchSessionId,
	}
}

// MatchfunctionBackfillProposalToProtoBackfillProposal will convert a matchmaker backfill proposal to a proto backfill proposal
func MatchfunctionBackfillProposalToProtoBackfillProposal(proposal matchmaker.BackfillProposal) *BackfillProposal {
	return &BackfillProposal{
		BackfillTicketId: proposal.BackfillTicketID,
		CreatedAt:        timestamppb.New(proposal.CreatedAt),
		AddedTickets: pie_.Map(proposal.AddedTickets, func(t matchmaker.Ticket) *Ticket {
			return MatchfunctionTicketToProtoTicket(t)
		}),
		ProposedTeams: pie_.Map(proposal.ProposedTeams, func(team matchmaker.Team) *BackfillProposal_Team {
			return &BackfillProposal_Team{UserIds: pie_.Map(team.UserIDs, func(x player.ID) string {
				return player.IDToString(x)
			})}
		}),
		ProposalId:     proposal.ProposalID,
		MatchPool:      proposal.MatchPool,
		MatchSessionId: proposal.MatchSessionID,
	}
}

// MatchfunctionBackfillTicketToProtoBackfillTicket will convert a matchmaker backfill ticket to a proto backfill ticket
func MatchfunctionBackfillTicketToProtoBackfillTicket(backfillTicket matchmaker.BackfillTicket) *BackfillTicket {
	match := backfillTicket.PartialMatch
	matchAttrs, err := structpb.NewStruct(match.MatchAttributes)
	if err != nil {
		logrus.Errorf("error on structpb for match attributes")
	}
	var backfillTeams []*BackfillTicket_Team
	for _, team := range match.Teams {
		userIDs := pie_.Map(team.UserIDs, func(p player.ID) string {
			return player.IDToString(p)
		})
		if len(userIDs) > 0 {
			backfillTeams = append(backfillTeams, &BackfillTicket_Team{UserIds: userIDs})
		}
	}
	tickets := pie_.Map(match.Tickets, func(t matchmaker.Ticket) *Ticket {
		return MatchfunctionTicketToProtoTicket(t)
	})
	return &BackfillTicket{
		TicketId:  backfillTicket.TicketID,
		MatchPool: backfillTicket.MatchPool,
		CreatedAt: timestamppb.New(backfillTicket.CreatedAt),
		PartialMatch: &BackfillTicket_PartialMatch{
			Tickets:           tickets,
			Backfill:          match.Backfill,
			ServerName:        match.ServerName,
			ClientVersion:     match.ClientVersion,
			Teams:             backfillTeams,
			MatchAttributes:   matchAttrs,
			RegionPreferences: match.RegionPreference,
		},
		MatchSessionId: backfillTicket.MatchSessionID,
	}
}
