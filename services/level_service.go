package services

import (
	"fmt"

	"skillswap_server/models"
)

// XP milestones that grant a one-time badge when crossed.
var xpMilestones = []int{100, 500, 1000, 2000}

// Mentorship badges granted from session history counts.
const (
	mentorBadge        = "Mentor Lv1"
	learnerBadge       = "Learner Lv1"
	mentorBadgeMinimum = 5
)

// AwardXP adds amount to the user's XP and applies badge and level
// bookkeeping. Milestone badges are checked against the running xp value
// before the leveling loop consumes it, then the loop subtracts level*100
// per level gained and grants a "Level N" badge for each new level. Mentor
// and learner badges are granted once the session history holds five taught
// or learned sessions. Pure: the caller persists the mutated record.
//
// Returns the badges granted by this call and whether a level-up occurred.
// Never fails, and never grants a badge the user already holds.
func AwardXP(user *models.User, amount int) (newBadges []string, leveledUp bool) {
	// Records predating the leveling system may carry level 0.
	if user.Level < 1 {
		user.Level = 1
	}

	user.XP += amount

	grant := func(badge string) {
		if !user.HasBadge(badge) {
			user.Badges = append(user.Badges, badge)
			newBadges = append(newBadges, badge)
		}
	}

	for _, milestone := range xpMilestones {
		if user.XP >= milestone {
			grant(fmt.Sprintf("XP %d", milestone))
		}
	}

	for user.XP >= user.Level*100 {
		user.XP -= user.Level * 100
		user.Level++
		leveledUp = true
		grant(fmt.Sprintf("Level %d", user.Level))
	}

	var taught, learned int
	for _, s := range user.SessionHistory {
		switch s.Role {
		case models.RoleTaught:
			taught++
		case models.RoleLearned:
			learned++
		}
	}
	if taught >= mentorBadgeMinimum {
		grant(mentorBadge)
	}
	if learned >= mentorBadgeMinimum {
		grant(learnerBadge)
	}

	return newBadges, leveledUp
}
