package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	gameConnectSignIn                       = operation("CapacitorGameConnect", "signIn")
	gameConnectShowAchievements             = operation("CapacitorGameConnect", "showAchievements")
	gameConnectShowLeaderboard              = operation("CapacitorGameConnect", "showLeaderboard")
	gameConnectSubmitScore                  = operation("CapacitorGameConnect", "submitScore")
	gameConnectUnlockAchievement            = operation("CapacitorGameConnect", "unlockAchievement")
	gameConnectIncrementAchievementProgress = operation("CapacitorGameConnect", "incrementAchievementProgress")
)

// GameConnect talks to Game Center on iOS and Play Games on Android.
var GameConnect = &GameConnectService{}

// GameConnectService wraps the CapacitorGameConnect plugin.
type GameConnectService struct{}

// LeaderboardOptions names a leaderboard.
type LeaderboardOptions struct {
	LeaderboardID string `json:"leaderboardID"`
}

// SubmitScoreOptions configures SubmitScore.
type SubmitScoreOptions struct {
	LeaderboardID    string  `json:"leaderboardID"`
	TotalScoreAmount float64 `json:"totalScoreAmount"`
}

// AchievementOptions names an achievement.
type AchievementOptions struct {
	AchievementID string `json:"achievementID"`
}

// IncrementAchievementOptions configures IncrementAchievementProgress.
type IncrementAchievementOptions struct {
	AchievementID     string  `json:"achievementID"`
	PointsToIncrement float64 `json:"pointsToIncrement"`
}

// SignIn signs the player in.
func (s *GameConnectService) SignIn(ctx context.Context) error {
	return platform.Call(ctx, gameConnectSignIn)
}

// ShowAchievements shows the native achievements screen.
func (s *GameConnectService) ShowAchievements(ctx context.Context) error {
	return platform.Call(ctx, gameConnectShowAchievements)
}

// ShowLeaderboard shows the leaderboard with the given id.
func (s *GameConnectService) ShowLeaderboard(ctx context.Context, leaderboardID string) error {
	return platform.CallWith(ctx, gameConnectShowLeaderboard, LeaderboardOptions{LeaderboardID: leaderboardID})
}

// SubmitScore submits a score to a leaderboard.
func (s *GameConnectService) SubmitScore(ctx context.Context, opts SubmitScoreOptions) error {
	return platform.CallWith(ctx, gameConnectSubmitScore, opts)
}

// UnlockAchievement unlocks the achievement with the given id.
func (s *GameConnectService) UnlockAchievement(ctx context.Context, achievementID string) error {
	return platform.CallWith(ctx, gameConnectUnlockAchievement, AchievementOptions{AchievementID: achievementID})
}

// IncrementAchievementProgress adds points to an incremental achievement.
func (s *GameConnectService) IncrementAchievementProgress(ctx context.Context, opts IncrementAchievementOptions) error {
	return platform.CallWith(ctx, gameConnectIncrementAchievementProgress, opts)
}
