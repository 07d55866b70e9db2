package utils

import "github.com/schollz/progressbar/v3"

// DescBuilding is the progress bar description of a demo build
const DescBuilding = "Building"

// NewProgressBar creates a consistently styled progress bar.
//
// Use -1 for unknown totals (spinner mode). Known totals show the count and
// iterations per second.
//
//	bar := utils.NewProgressBar(plan.Total(), utils.DescBuilding)
//	defer bar.Finish()
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
