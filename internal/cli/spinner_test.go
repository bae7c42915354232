package cli

import (
	"io"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/pencalc/pencalc/internal/cli/mocks"
)

func TestSweepProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spinner := mocks.NewMockSpinner(ctrl)
	original := newSpinner
	newSpinner = func(io.Writer) Spinner { return spinner }
	t.Cleanup(func() { newSpinner = original })

	spinner.EXPECT().UpdateSuffix(" sampling...")
	spinner.EXPECT().Start()
	spinner.EXPECT().UpdateSuffix(" sampling...  50%")
	spinner.EXPECT().UpdateSuffix(" sampling... 100%")
	spinner.EXPECT().Stop()

	progress, stop := SweepProgress(io.Discard)
	progress(0.5)
	progress(1)
	stop()
}
