package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Dungeon struct {
	Name      string `yaml:"name" json:"name"`
	Normal    int    `yaml:"normal" json:"normal"`
	Challenge int    `yaml:"challenge" json:"challenge"`
}

type World struct {
	Num      int       `yaml:"num" json:"num"`
	Bosses   []string  `yaml:"bosses" json:"bosses"`
	Dungeons []Dungeon `yaml:"dungeons" json:"dungeons"`
}

type Tower struct {
	Name   string `yaml:"name" json:"name"`
	Points int    `yaml:"points" json:"points"`
}

type QuestRewards struct {
	Easy   int `yaml:"easy" json:"easy"`
	Medium int `yaml:"medium" json:"medium"`
	Hard   int `yaml:"hard" json:"hard"`
}

// Catalog is the static set of scorable items. It never changes at
// runtime; a yaml override file may replace parts of it at boot.
type Catalog struct {
	Worlds            []World      `yaml:"worlds" json:"worlds"`
	Towers            []Tower      `yaml:"towers" json:"towers"`
	GuildQuests       QuestRewards `yaml:"guild_quests" json:"guildQuests"`
	BossPoints        int          `yaml:"boss_points" json:"bossPoints"`
	InfiniteTowerStep int          `yaml:"infinite_tower_step" json:"infiniteTowerStep"`
	DailyGoal         int          `yaml:"daily_goal" json:"dailyGoal"`
}

func (c *Catalog) ApplyDefaults() {
	d := Default()
	if len(c.Worlds) == 0 {
		c.Worlds = d.Worlds
	}
	if len(c.Towers) == 0 {
		c.Towers = d.Towers
	}
	if c.GuildQuests == (QuestRewards{}) {
		c.GuildQuests = d.GuildQuests
	}
	if c.BossPoints == 0 {
		c.BossPoints = d.BossPoints
	}
	if c.InfiniteTowerStep == 0 {
		c.InfiniteTowerStep = d.InfiniteTowerStep
	}
	if c.DailyGoal == 0 {
		c.DailyGoal = d.DailyGoal
	}
}

// Load reads a yaml catalog override. A missing file yields the built-in
// catalog; a file that exists but does not parse is a boot error.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}

// World returns the world with the given number, or false.
func (c *Catalog) World(num int) (World, bool) {
	for _, w := range c.Worlds {
		if w.Num == num {
			return w, true
		}
	}
	return World{}, false
}

// DungeonKey is the completion-flag key for one dungeon run mode.
func DungeonKey(name, mode string) string {
	return name + "_" + mode
}

// BossKey is the completion-flag key for a world boss.
func BossKey(worldNum int, boss string) string {
	return fmt.Sprintf("world%d_%s", worldNum, boss)
}
