package scoring

import (
	"math"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/catalog"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/model"
)

// Points sums a player's daily total against the catalog. Pure; absent
// flags contribute nothing.
func Points(p model.Progress, c *catalog.Catalog) int {
	points := 0

	for _, world := range c.Worlds {
		for _, d := range world.Dungeons {
			if p.Dungeons[catalog.DungeonKey(d.Name, "normal")] {
				points += d.Normal
			}
			if p.Dungeons[catalog.DungeonKey(d.Name, "challenge")] {
				points += d.Challenge
			}
		}
		for _, boss := range world.Bosses {
			if p.WorldEvents[catalog.BossKey(world.Num, boss)] {
				points += c.BossPoints
			}
		}
	}

	for _, tower := range c.Towers {
		if p.Towers[tower.Name] {
			points += tower.Points
		}
	}

	points += InfiniteTowerBonus(p.InfiniteTower.Floor, c.InfiniteTowerStep)

	if p.GuildQuests.Easy {
		points += c.GuildQuests.Easy
	}
	if p.GuildQuests.Medium {
		points += c.GuildQuests.Medium
	}
	if p.GuildQuests.Hard {
		points += c.GuildQuests.Hard
	}

	return points
}

// InfiniteTowerBonus rewards only full multiples of step floors.
func InfiniteTowerBonus(floor, step int) int {
	if floor <= 0 || step <= 0 {
		return 0
	}
	return (floor / step) * step
}

type Completion struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// WorldCompletion counts normal runs, challenge runs and bosses toward a
// per-world percentage. Every world has at least one dungeon, so the
// total is never zero.
func WorldCompletion(p model.Progress, w catalog.World) Completion {
	completed := 0
	total := 0

	for _, d := range w.Dungeons {
		total += 2
		if p.Dungeons[catalog.DungeonKey(d.Name, "normal")] {
			completed++
		}
		if p.Dungeons[catalog.DungeonKey(d.Name, "challenge")] {
			completed++
		}
	}
	for _, boss := range w.Bosses {
		total++
		if p.WorldEvents[catalog.BossKey(w.Num, boss)] {
			completed++
		}
	}

	return Completion{
		Completed:  completed,
		Total:      total,
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
	}
}
