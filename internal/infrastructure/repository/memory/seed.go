package memory

import "github.com/riskibarqy/fantasy-draft/internal/domain/player"

// SeedPlayers is a small offline NFL catalog used when no vendor key is configured.
func SeedPlayers() []player.Player {
	return []player.Player{
		seedPlayer(19801, "Josh Allen", player.PositionQuarterback, "BUF", 22.4, line(385.4, 385.4, 4306, 28), line(372.0, 372.0, 4150, 27)),
		seedPlayer(19781, "Lamar Jackson", player.PositionQuarterback, "BAL", 20.8, line(430.4, 430.4, 4172, 41), line(388.5, 388.5, 3950, 32)),
		seedPlayer(21681, "Jalen Hurts", player.PositionQuarterback, "PHI", 31.7, line(330.2, 330.2, 2903, 18), line(345.1, 345.1, 3300, 22)),
		seedPlayer(22564, "Joe Burrow", player.PositionQuarterback, "CIN", 40.3, line(371.9, 371.9, 4918, 43), line(350.6, 350.6, 4600, 35)),
		seedPlayer(24923, "Jayden Daniels", player.PositionQuarterback, "WAS", 34.2, line(381.1, 381.1, 3568, 25), line(360.2, 360.2, 3700, 26)),
		seedPlayer(23235, "Bijan Robinson", player.PositionRunningBack, "ATL", 2.1, line(279.1, 340.1, 1456, 14), line(265.0, 322.5, 1400, 12)),
		seedPlayer(22587, "Saquon Barkley", player.PositionRunningBack, "PHI", 3.3, line(322.3, 355.3, 2005, 13), line(260.4, 295.4, 1500, 11)),
		seedPlayer(23239, "Jahmyr Gibbs", player.PositionRunningBack, "DET", 4.0, line(318.4, 370.4, 1412, 16), line(270.3, 322.8, 1300, 13)),
		seedPlayer(17959, "Derrick Henry", player.PositionRunningBack, "BAL", 12.6, line(325.6, 344.6, 1921, 16), line(250.1, 270.1, 1450, 12)),
		seedPlayer(22496, "Jonathan Taylor", player.PositionRunningBack, "IND", 15.9, line(221.0, 239.0, 1431, 11), line(235.4, 262.4, 1350, 10)),
		seedPlayer(21682, "De'Von Achane", player.PositionRunningBack, "MIA", 11.2, line(238.3, 316.3, 907, 6), line(225.0, 290.0, 950, 7)),
		seedPlayer(24945, "Ashton Jeanty", player.PositionRunningBack, "LV", 9.8, nil, line(220.6, 255.6, 1250, 9)),
		seedPlayer(22461, "Ja'Marr Chase", player.PositionWideReceiver, "CIN", 1.2, line(276.3, 403.3, 1708, 17), line(240.1, 350.1, 1450, 12)),
		seedPlayer(22481, "Justin Jefferson", player.PositionWideReceiver, "MIN", 4.9, line(228.2, 331.2, 1533, 10), line(222.0, 322.0, 1450, 9)),
		seedPlayer(21685, "CeeDee Lamb", player.PositionWideReceiver, "DAL", 6.4, line(193.6, 294.6, 1194, 6), line(215.5, 320.5, 1350, 9)),
		seedPlayer(23122, "Puka Nacua", player.PositionWideReceiver, "LAR", 7.7, line(106.4, 185.4, 990, 3), line(190.2, 295.2, 1300, 7)),
		seedPlayer(22580, "Amon-Ra St. Brown", player.PositionWideReceiver, "DET", 8.1, line(213.9, 328.9, 1263, 12), line(205.0, 315.0, 1250, 10)),
		seedPlayer(23190, "Malik Nabers", player.PositionWideReceiver, "NYG", 10.5, line(157.4, 266.4, 1204, 7), line(185.0, 290.0, 1250, 7)),
		seedPlayer(18082, "Tyreek Hill", player.PositionWideReceiver, "MIA", 36.0, line(116.9, 197.9, 959, 6), line(160.0, 250.0, 1150, 6)),
		seedPlayer(24930, "Brian Thomas Jr.", player.PositionWideReceiver, "JAX", 13.3, line(205.2, 292.2, 1282, 10), line(190.4, 280.4, 1200, 8)),
		seedPlayer(24925, "Brock Bowers", player.PositionTightEnd, "LV", 24.6, line(167.4, 279.4, 1194, 5), line(150.0, 255.0, 1100, 5)),
		seedPlayer(20051, "George Kittle", player.PositionTightEnd, "SF", 42.8, line(163.2, 241.2, 1106, 8), line(140.0, 215.0, 950, 7)),
		seedPlayer(21124, "Trey McBride", player.PositionTightEnd, "ARI", 30.9, line(124.6, 235.6, 1146, 2), line(135.0, 235.0, 1050, 4)),
		seedPlayer(17304, "Travis Kelce", player.PositionTightEnd, "KC", 61.5, line(105.3, 202.3, 823, 3), line(110.0, 195.0, 850, 4)),
		seedPlayer(22880, "Brandon Aubrey", player.PositionKicker, "DAL", 120.4, line(172.0, 172.0, 0, 0), line(150.0, 150.0, 0, 0)),
		seedPlayer(18932, "Justin Tucker", player.PositionKicker, "BAL", 0, line(112.0, 112.0, 0, 0), nil),
		seedPlayer(20789, "Harrison Butker", player.PositionKicker, "KC", 130.2, line(118.0, 118.0, 0, 0), line(140.0, 140.0, 0, 0)),
		seedPlayer(90001, "Philadelphia Eagles", player.PositionDefense, "PHI", 110.7, line(142.0, 142.0, 0, 0), line(125.0, 125.0, 0, 0)),
		seedPlayer(90002, "Baltimore Ravens", player.PositionDefense, "BAL", 128.3, line(118.0, 118.0, 0, 0), line(120.0, 120.0, 0, 0)),
		seedPlayer(90003, "Pittsburgh Steelers", player.PositionDefense, "PIT", 135.9, line(133.0, 133.0, 0, 0), line(115.0, 115.0, 0, 0)),
		seedPlayer(20215, "Lane Johnson", "OL", "PHI", 0, nil, nil),
		seedPlayer(20400, "Creed Humphrey", "C", "KC", 0, nil, nil),
		seedPlayer(19150, "Tommy Townsend", "P", "HOU", 0, nil, nil),
	}
}

// SeedNews returns a few recent headlines, newest first per player.
func SeedNews() []player.News {
	return []player.News{
		{NewsID: 501, PlayerID: 19801, Title: "Allen sharp in preseason tune-up", Content: "Josh Allen completed 8 of 10 passes in limited work.", Source: "Team site", Updated: "2025-08-23T19:40:00"},
		{NewsID: 502, PlayerID: 19801, Title: "Bills extend Allen", Content: "Buffalo agreed to a six-year extension with its franchise quarterback.", Source: "Wire", Updated: "2025-03-08T12:00:00"},
		{NewsID: 503, PlayerID: 23235, Title: "Robinson in line for bell-cow role", Content: "Coaches expect Bijan Robinson to handle 300+ touches.", Source: "Beat writer", Updated: "2025-08-20T10:15:00"},
		{NewsID: 504, PlayerID: 23239, Title: "Gibbs dealing with minor ankle issue", Content: "Jahmyr Gibbs sat out Tuesday's practice as a precaution.", Source: "Beat writer", Updated: "2025-08-26T16:30:00"},
		{NewsID: 505, PlayerID: 23239, Title: "Gibbs expected to see more early-down work", Content: "The Lions plan to expand Jahmyr Gibbs' role.", Source: "Podcast", Updated: "2025-08-12T09:00:00"},
		{NewsID: 506, PlayerID: 23239, Title: "Gibbs practices in full", Content: "Jahmyr Gibbs returned to a full practice on Thursday.", Source: "Team site", Updated: "2025-08-28T14:45:00"},
		{NewsID: 507, PlayerID: 23239, Title: "Gibbs named to preseason All-Pro list", Content: "Jahmyr Gibbs headlines a list of breakout candidates.", Source: "Magazine", Updated: "2025-07-30T08:00:00"},
		{NewsID: 508, PlayerID: 22461, Title: "Chase reports to camp", Content: "Ja'Marr Chase reported on time after signing his extension.", Source: "Wire", Updated: "2025-07-23T11:20:00"},
		{NewsID: 509, PlayerID: 24945, Title: "Jeanty signs rookie deal", Content: "The sixth overall pick is under contract.", Source: "Team site", Updated: "2025-07-18T13:00:00"},
		{NewsID: 510, PlayerID: 17304, Title: "Kelce slimmed down for 2025", Content: "Travis Kelce arrived at camp noticeably lighter.", Source: "Beat writer", Updated: "2025-07-24T15:00:00"},
	}
}

func seedPlayer(id int64, name string, pos player.Position, team string, adp float64, stats, projections player.StatLine) player.Player {
	if stats == nil {
		stats = player.StatLine{}
	}
	if projections == nil {
		projections = player.StatLine{}
	}
	return player.Player{
		ID:                   id,
		Name:                 name,
		Position:             pos,
		Team:                 team,
		AverageDraftPosition: adp,
		Stats:                stats,
		Projections:          projections,
	}
}

func line(standard, ppr float64, yards, touchdowns int) player.StatLine {
	return player.StatLine{
		player.StatFantasyPoints:    standard,
		player.StatFantasyPointsPPR: ppr,
		"Yards":                     yards,
		"Touchdowns":                touchdowns,
	}
}
