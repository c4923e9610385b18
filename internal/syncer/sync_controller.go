package syncer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crickpwa/scorebook/pkg/responses"
)

// SyncController exposes the push endpoint. The caller (UI, cron, whoever
// notices connectivity) decides when to invoke it; scoring never does.
type SyncController struct {
	syncer *Syncer
}

// NewSyncController creates a new sync controller
func NewSyncController(syncer *Syncer) *SyncController {
	return &SyncController{syncer: syncer}
}

// PushResult reports the outcome of a push round.
type PushResult struct {
	Pushed  int  `json:"pushed"`
	Enabled bool `json:"enabled"`
}

// PushPending godoc
// @Summary Push pending matches to the remote
// @Description Idempotent: already-synced matches are skipped, rejected ones stay pending and are retried next call.
// @Tags Sync
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=PushResult}
// @Failure 502 {object} responses.ErrorResponse "Remote rejected one or more matches"
// @Router /sync/push [post]
func (sc *SyncController) PushPending(c *gin.Context) {
	pushed, err := sc.syncer.PushPending(c.Request.Context())
	result := PushResult{Pushed: pushed, Enabled: sc.syncer.Enabled()}
	if err != nil {
		responses.SendError(c, http.StatusBadGateway, "Some matches could not be pushed", result)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Push completed", result)
}

// SyncRoutes sets up the sync routes.
func SyncRoutes(router *gin.RouterGroup, syncer *Syncer) {
	syncController := NewSyncController(syncer)
	router.POST("/sync/push", syncController.PushPending)
}
