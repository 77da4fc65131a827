package jobs

import (
	"context"

	"hoteldesk-backoffice/internal/logger"
)

// ReconcileLedgers cross-checks every active hotel's register against its
// movement log and mails the findings to the accounting team. Read-only:
// a mismatch is reported, never auto-corrected.
func (jr *JobRunner) ReconcileLedgers() {
	jr.runWithRecovery("ReconcileLedgers", func() {
		ctx := context.Background()

		hotels, err := jr.services.Hotel.ListHotels(ctx, true)
		if err != nil {
			logger.Error("Failed to list hotels for reconciliation", "error", err)
			return
		}

		clean := 0
		for i := range hotels {
			hotel := &hotels[i]
			mismatches, err := jr.services.Ledger.Reconcile(ctx, hotel.ID)
			if err != nil {
				logger.Error("Reconciliation failed", "hotel_id", hotel.ID, "error", err)
				continue
			}
			if len(mismatches) == 0 {
				clean++
				continue
			}
			if err := jr.services.Alert.SendReconciliationAlert(ctx, hotel, mismatches); err != nil {
				logger.Error("Failed to send reconciliation alert",
					"hotel_id", hotel.ID, "error", err)
			}
		}

		logger.Info("Ledger reconciliation finished",
			"hotels", len(hotels), "clean", clean, "flagged", len(hotels)-clean)
	})
}
