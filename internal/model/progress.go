package model

// QuestTier names one of the three fixed-reward guild quests.
type QuestTier string

const (
	QuestEasy   QuestTier = "easy"
	QuestMedium QuestTier = "medium"
	QuestHard   QuestTier = "hard"
)

type InfiniteTower struct {
	Floor int `json:"floor"`
}

type GuildQuests struct {
	Easy   bool `json:"easy"`
	Medium bool `json:"medium"`
	Hard   bool `json:"hard"`
}

// Progress is one player's completion state for a single game day.
// Flag maps are keyed by catalog keys (see catalog.DungeonKey /
// catalog.BossKey); missing entries read as not completed.
type Progress struct {
	Name          string          `json:"name"`
	Dungeons      map[string]bool `json:"dungeons"`
	WorldEvents   map[string]bool `json:"worldEvents"`
	Towers        map[string]bool `json:"towers"`
	InfiniteTower InfiniteTower   `json:"infiniteTower"`
	GuildQuests   GuildQuests     `json:"guildQuests"`
}

func NewProgress(name string) Progress {
	p := Progress{Name: name}
	p.Normalize()
	return p
}

func (p *Progress) Normalize() {
	if p.Dungeons == nil {
		p.Dungeons = map[string]bool{}
	}
	if p.WorldEvents == nil {
		p.WorldEvents = map[string]bool{}
	}
	if p.Towers == nil {
		p.Towers = map[string]bool{}
	}
	if p.InfiniteTower.Floor < 0 {
		p.InfiniteTower.Floor = 0
	}
}

func (p *Progress) SetDungeon(key string, done bool) {
	p.Normalize()
	p.Dungeons[key] = done
}

func (p *Progress) SetWorldEvent(key string, done bool) {
	p.Normalize()
	p.WorldEvents[key] = done
}

func (p *Progress) SetTower(name string, done bool) {
	p.Normalize()
	p.Towers[name] = done
}

// SetInfiniteFloor clamps negative input to zero.
func (p *Progress) SetInfiniteFloor(floor int) {
	if floor < 0 {
		floor = 0
	}
	p.InfiniteTower.Floor = floor
}

// SetGuildQuest ignores unknown tiers.
func (p *Progress) SetGuildQuest(tier QuestTier, done bool) {
	switch tier {
	case QuestEasy:
		p.GuildQuests.Easy = done
	case QuestMedium:
		p.GuildQuests.Medium = done
	case QuestHard:
		p.GuildQuests.Hard = done
	}
}
