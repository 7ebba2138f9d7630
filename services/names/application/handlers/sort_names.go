package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghuser/namesort/pkg/app"
	"github.com/ghuser/namesort/pkg/config"
	"github.com/ghuser/namesort/pkg/errmsg"
	"github.com/ghuser/namesort/pkg/logger"
	"github.com/ghuser/namesort/pkg/telemetry"
	appsvcs "github.com/ghuser/namesort/services/names/application/services"
)

const msgMissingInput = "Please provide the path to the input file."

// SortNamesHandler handles `namesort <input-file>`.
type SortNamesHandler struct {
	svc *appsvcs.Services
	cfg *config.Config
	log logger.Logger

	// Order is bound to the --order flag. It takes precedence over SORT_ORDER.
	Order string
}

// NewSortNamesHandler returns a SortNamesHandler backed by the given services.
func NewSortNamesHandler(svc *appsvcs.Services, a *app.Application) *SortNamesHandler {
	return &SortNamesHandler{svc: svc, cfg: a.Config, log: a.Logger}
}

// Execute sorts the names in args[0] and writes them to the fixed output file.
// Every failure is reported on the command's output and the command still
// succeeds, so the process exits normally.
func (h *SortNamesHandler) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, msgMissingInput)
		return cmd.Usage()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := h.svc.Sort.Sort(ctx, appsvcs.SortRequest{
		InputPath:  args[0],
		OutputPath: appsvcs.OutputPath,
		OrderInput: h.order(),
	})
	if err != nil {
		if errmsg.Expected(err) {
			h.log.InfoContext(ctx, "sort aborted", "input", args[0], "error", err)
		} else {
			h.log.ErrorContext(ctx, "sort failed", "input", args[0], "error", err)
			telemetry.CaptureError(err)
		}
		fmt.Fprintln(out, errmsg.Message(err))
	}
	return nil
}

func (h *SortNamesHandler) order() string {
	if h.Order != "" {
		return h.Order
	}
	if h.cfg != nil {
		return h.cfg.SortOrder
	}
	return ""
}
