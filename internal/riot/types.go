package riot

// AccountResponse represents the response from /riot/account/v1/accounts/by-riot-id
type AccountResponse struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// MatchResponse represents the response from /lol/match/v5/matches/{matchId}
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"`
	GameDuration int                `json:"gameDuration"`
	GameMode     string             `json:"gameMode"`
	GameType     string             `json:"gameType"`
	GameVersion  string             `json:"gameVersion"`
	MapID        int                `json:"mapId"`
	PlatformID   string             `json:"platformId"`
	QueueID      int                `json:"queueId"`
	Participants []MatchParticipant `json:"participants"`
	Teams        []MatchTeam        `json:"teams"`
}

type MatchParticipant struct {
	ParticipantID  int    `json:"participantId"`
	PUUID          string `json:"puuid"`
	TeamID         int    `json:"teamId"` // 100 blue, 200 red
	RiotIdGameName string `json:"riotIdGameName"`
	RiotIdTagline  string `json:"riotIdTagline"`
	SummonerName   string `json:"summonerName"`
	SummonerLevel  int    `json:"summonerLevel"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	ChampLevel     int    `json:"champLevel"`
	TeamPosition   string `json:"teamPosition"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	Lane           string `json:"lane"`
	Role           string `json:"role"`
	Win            bool   `json:"win"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldEarned              int `json:"goldEarned"`
	GoldSpent               int `json:"goldSpent"`
	TotalMinionsKilled      int `json:"totalMinionsKilled"`
	NeutralMinionsKilled    int `json:"neutralMinionsKilled"`
	TotalDamageDealt        int `json:"totalDamageDealt"`
	TotalDamageTaken        int `json:"totalDamageTaken"`
	DamageDealtToChampions  int `json:"totalDamageDealtToChampions"`
	DamageDealtToObjectives int `json:"damageDealtToObjectives"`

	VisionScore         int `json:"visionScore"`
	WardsPlaced         int `json:"wardsPlaced"`
	WardsKilled         int `json:"wardsKilled"`
	DetectorWardsPlaced int `json:"detectorWardsPlaced"`

	TurretKills    int `json:"turretKills"`
	InhibitorKills int `json:"inhibitorKills"`

	GameEndedInSurrender      bool `json:"gameEndedInSurrender"`
	GameEndedInEarlySurrender bool `json:"gameEndedInEarlySurrender"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"` // Trinket

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`
}

type MatchTeam struct {
	TeamID     int             `json:"teamId"`
	Win        bool            `json:"win"`
	Objectives *TeamObjectives `json:"objectives,omitempty"`
}

type TeamObjectives struct {
	Baron      ObjectiveCount `json:"baron"`
	Dragon     ObjectiveCount `json:"dragon"`
	RiftHerald ObjectiveCount `json:"riftHerald"`
	Tower      ObjectiveCount `json:"tower"`
	Inhibitor  ObjectiveCount `json:"inhibitor"`
	Champion   ObjectiveCount `json:"champion"`
}

type ObjectiveCount struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// TimelineResponse represents the response from /lol/match/v5/matches/{matchId}/timeline
type TimelineResponse struct {
	Metadata TimelineMetadata `json:"metadata"`
	Info     TimelineInfo     `json:"info"`
}

type TimelineMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type TimelineInfo struct {
	FrameInterval int64           `json:"frameInterval"`
	Frames        []TimelineFrame `json:"frames"`
}

// TimelineFrame is a periodic snapshot of all participants plus the events
// that occurred since the previous frame. Participant frames are keyed by
// slot number as a string ("1".."10"), matching the vendor payload.
type TimelineFrame struct {
	Timestamp         int64                       `json:"timestamp"`
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []TimelineEvent             `json:"events"`
}

type ParticipantFrame struct {
	ParticipantID       int      `json:"participantId"`
	TotalGold           int      `json:"totalGold"`
	CurrentGold         int      `json:"currentGold"`
	XP                  int      `json:"xp"`
	Level               int      `json:"level"`
	MinionsKilled       int      `json:"minionsKilled"`
	JungleMinionsKilled int      `json:"jungleMinionsKilled"`
	Position            Position `json:"position"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TimelineEvent is a raw timeline event. Only Type and Timestamp are always
// present; everything else is type-specific and may be absent, so numeric
// fields default to zero and slices to nil.
type TimelineEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`

	// CHAMPION_KILL, ELITE_MONSTER_KILL, BUILDING_KILL
	KillerID                int            `json:"killerId,omitempty"`
	VictimID                int            `json:"victimId,omitempty"`
	AssistingParticipantIDs []int          `json:"assistingParticipantIds,omitempty"`
	Bounty                  int            `json:"bounty,omitempty"`
	ShutdownBounty          int            `json:"shutdownBounty,omitempty"`
	Position                *Position      `json:"position,omitempty"`
	VictimDamageReceived    []DamageRecord `json:"victimDamageReceived,omitempty"`

	// ELITE_MONSTER_KILL
	MonsterType    string `json:"monsterType,omitempty"`
	MonsterSubType string `json:"monsterSubType,omitempty"`
	KillerTeamID   int    `json:"killerTeamId,omitempty"`

	// BUILDING_KILL (TeamID is the team that owned the building)
	TeamID       int    `json:"teamId,omitempty"`
	BuildingType string `json:"buildingType,omitempty"`
	TowerType    string `json:"towerType,omitempty"`
	LaneType     string `json:"laneType,omitempty"`

	// ITEM_* events
	ParticipantID int `json:"participantId,omitempty"`
	ItemID        int `json:"itemId,omitempty"`
	AfterID       int `json:"afterId,omitempty"`
	BeforeID      int `json:"beforeId,omitempty"`
	GoldGain      int `json:"goldGain,omitempty"`

	// WARD_PLACED / WARD_KILL
	WardType  string `json:"wardType,omitempty"`
	CreatorID int    `json:"creatorId,omitempty"`

	// OBJECTIVE_BOUNTY_PRESTART / OBJECTIVE_BOUNTY_FINISH
	ActualStartTime int64 `json:"actualStartTime,omitempty"`

	// DRAGON_SOUL_GIVEN
	Name string `json:"name,omitempty"`
}

// DamageRecord attributes a chunk of damage on a victim to a participant.
type DamageRecord struct {
	ParticipantID  int    `json:"participantId"`
	Name           string `json:"name"`
	PhysicalDamage int    `json:"physicalDamage"`
	MagicDamage    int    `json:"magicDamage"`
	TrueDamage     int    `json:"trueDamage"`
}

// Total returns the combined damage of the record.
func (d DamageRecord) Total() int {
	return d.PhysicalDamage + d.MagicDamage + d.TrueDamage
}
