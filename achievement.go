package main

// Achievement definitions
type AchievementDef struct {
	ID          string
	Name        string
	Description string
}

var Achievements = []AchievementDef{
	{"first_kill", "First Contact", "Destroy your first enemy"},
	{"exterminator", "Exterminator", "Destroy 100 enemies"},
	{"fleet_breaker", "Fleet Breaker", "Destroy 1000 enemies"},
	{"boss_slayer", "Boss Slayer", "Bring down a boss"},
	{"wave_5", "Wave Rider", "Reach wave 5"},
	{"wave_10", "Deep Space", "Reach wave 10"},
	{"score_10k", "High Roller", "Score 10000 points in one run"},
	{"collector", "Collector", "Pick up 50 powerups"},
	{"regular", "Regular", "Finish 25 runs"},
	{"survivor", "Survivor", "Play for 1 hour total"},
}

// CheckAchievements checks if any new achievements should be unlocked for
// a player, based on career stats written after the run. Returns the
// newly unlocked achievements.
func CheckAchievements(db *DB, playerID int64) []AchievementDef {
	if db == nil {
		return nil
	}

	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	var unlocked []AchievementDef

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_kill":
			return stats.Kills >= 1
		case "exterminator":
			return stats.Kills >= 100
		case "fleet_breaker":
			return stats.Kills >= 1000
		case "boss_slayer":
			return stats.Bosses >= 1
		case "wave_5":
			return stats.BestWave >= 5
		case "wave_10":
			return stats.BestWave >= 10
		case "score_10k":
			return stats.BestScore >= 10000
		case "collector":
			return stats.Powerups >= 50
		case "regular":
			return stats.Games >= 25
		case "survivor":
			return stats.Playtime >= 3600
		}
		return false
	}

	for _, def := range Achievements {
		if check(def.ID) {
			if newlyUnlocked, err := db.UnlockAchievement(playerID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}

	return unlocked
}
