package catalog

// Default returns the built-in World // Zero catalog: ten worlds, seven
// flat-rate towers, and the fixed guild quest rewards.
func Default() *Catalog {
	return &Catalog{
		Worlds: []World{
			{
				Num:    1,
				Bosses: []string{"Big Tree Guardian", "Crab Prince", "Dire Boarwolf"},
				Dungeons: []Dungeon{
					{Name: "1-1 Crabby Crusade", Normal: 1, Challenge: 2},
					{Name: "1-2 Scarecrow Defense", Normal: 1, Challenge: 2},
					{Name: "1-3 Dire Problem", Normal: 1, Challenge: 2},
					{Name: "1-4 Kingslayer", Normal: 1, Challenge: 2},
					{Name: "1-5 Gravetower Dungeon", Normal: 1, Challenge: 2},
				},
			},
			{
				Num:    2,
				Bosses: []string{"Big Poison Flower", "Dark Goblin Knight", "Red Goblins"},
				Dungeons: []Dungeon{
					{Name: "2-1 Temple of Ruin", Normal: 1, Challenge: 2},
					{Name: "2-2 Mama Trauma", Normal: 1, Challenge: 2},
					{Name: "2-3 Volcano's Shadow", Normal: 2, Challenge: 3},
					{Name: "2-4 Volcano Dungeon", Normal: 2, Challenge: 3},
				},
			},
			{
				Num:    3,
				Bosses: []string{"Icy Blob", "Castle Commander", "Dragon Protector"},
				Dungeons: []Dungeon{
					{Name: "3-1 Mountain Pass", Normal: 2, Challenge: 3},
					{Name: "3-2 Winter Cavern", Normal: 2, Challenge: 3},
					{Name: "3-3 Winter Dungeon", Normal: 2, Challenge: 3},
				},
			},
			{
				Num:    4,
				Bosses: []string{"Elder Golem", "Buff Twins (Cac & Tus)", "Fire Scorpion"},
				Dungeons: []Dungeon{
					{Name: "4-1 Scrap Canyon", Normal: 3, Challenge: 4},
					{Name: "4-2 Deserted Burrowmine", Normal: 3, Challenge: 4},
					{Name: "4-3 Pyramid Dungeon", Normal: 3, Challenge: 4},
				},
			},
			{
				Num:    5,
				Bosses: []string{"Great Blossom Tree", "Blue Goblin Gatekeeper", "Hand of Ignis"},
				Dungeons: []Dungeon{
					{Name: "5-1 Konoh Heartlands", Normal: 3, Challenge: 4},
					{Name: "5-2 Konoh Inferno", Normal: 4, Challenge: 5},
				},
			},
			{
				Num:    6,
				Bosses: []string{"Whirlpool Scorpion", "Lava Shark"},
				Dungeons: []Dungeon{
					{Name: "6-1 Rough Waters", Normal: 4, Challenge: 5},
					{Name: "6-2 Treasure Hunt", Normal: 4, Challenge: 5},
				},
			},
			{
				Num:    7,
				Bosses: []string{"Son of Ignis", "Hades", "Minotaur"},
				Dungeons: []Dungeon{
					{Name: "7-1 The Underworld", Normal: 5, Challenge: 6},
					{Name: "7-2 The Labyrinth", Normal: 5, Challenge: 6},
				},
			},
			{
				Num:    8,
				Bosses: []string{"Gargantigator", "Ancient Emerald Guardian", "Toa: Tree of the Ruins", "Ruinous, Poison Dragon"},
				Dungeons: []Dungeon{
					{Name: "8-1 Rescue in the Ruins", Normal: 5, Challenge: 6},
					{Name: "8-2 Ruin Rush", Normal: 6, Challenge: 7},
				},
			},
			{
				Num:    9,
				Bosses: []string{"Aether Lord", "Giant Minotaur", "Redwood Mammoose"},
				Dungeons: []Dungeon{
					{Name: "9-1 Treetop Trouble", Normal: 6, Challenge: 7},
					{Name: "9-2 Aether Fortress", Normal: 6, Challenge: 7},
				},
			},
			{
				Num:    10,
				Bosses: []string{"Crystal Assassin", "Crystal Alpha", "Crystal Tyrant"},
				Dungeons: []Dungeon{
					{Name: "10-1 Crystal Chaos", Normal: 7, Challenge: 8},
					{Name: "10-2 Astral Academy", Normal: 7, Challenge: 8},
				},
			},
		},
		Towers: []Tower{
			{Name: "Prison Tower", Points: 15},
			{Name: "Atlantis Tower", Points: 15},
			{Name: "Mezuvian Tower", Points: 15},
			{Name: "Oasis Tower", Points: 15},
			{Name: "Aether Tower", Points: 15},
			{Name: "Arcane Tower", Points: 15},
			{Name: "Celestial Tower", Points: 15},
		},
		GuildQuests:       QuestRewards{Easy: 25, Medium: 50, Hard: 100},
		BossPoints:        1,
		InfiniteTowerStep: 5,
		DailyGoal:         300,
	}
}
