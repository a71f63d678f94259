package engagement

import (
	"github.com/enryu8191/Creator-Bot/command/def"
	"github.com/enryu8191/Creator-Bot/config"
	"github.com/enryu8191/Creator-Bot/engine"
	"github.com/enryu8191/Creator-Bot/handler"
)

var (
	eng     *engine.Engine
	runtime *config.Runtime
)

// Setup wires the handlers to the engine and runtime config and registers
// them with the interaction router.
func Setup(e *engine.Engine, rt *config.Runtime) {
	eng = e
	runtime = rt

	handler.AddCommandHandler(def.StatusCommand.Name, StatusHandler)
	handler.AddCommandHandler(def.LeaderboardCommand.Name, LeaderboardHandler)
	handler.AddCommandHandler(def.ChangeLinkCommand.Name, ChangeLinkHandler)

	handler.AddCommandHandler(def.CheckEngagementCommand.Name, CheckEngagementHandler)
	handler.AddCommandHandler(def.ResetSessionCommand.Name, ResetSessionHandler)
	handler.AddCommandHandler(def.SetYapChannelCommand.Name, SetYapChannelHandler)
	handler.AddCommandHandler(def.SetLogCommand.Name, SetLogHandler)
	handler.AddCommandHandler(def.SetReportCommand.Name, SetReportHandler)

	// Two-step reset confirmation
	handler.AddComponentHandler("confirm_reset", ConfirmResetHandler)
	handler.AddComponentHandler("cancel_reset", CancelResetHandler)
}
