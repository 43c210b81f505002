package app

import (
	"context"

	"lapsecopy/internal/domain"
	"lapsecopy/internal/logging"
)

// Processor materializes one session: it resolves a destination directory
// and copies the ordered frames into it.
type Processor struct {
	Namer  Namer
	Copier *Copier
	Logger logging.Logger
}

// ProcessSession returns the counter actually used and the number of files
// copied. On a copy failure the used counter is still returned since its
// directory now exists.
func (p *Processor) ProcessSession(ctx context.Context, s *domain.Session, destBase, prefix string, counter int) (int, int, error) {
	stop := p.Logger.Measure("Processing session " + domain.SessionDirName(prefix, counter))
	defer stop()

	dir, used, err := p.Namer.Resolve(destBase, prefix, counter)
	if err != nil {
		return 0, 0, err
	}
	if used != counter {
		p.Logger.Verbosef("%s taken, using %s", domain.SessionDirName(prefix, counter), domain.SessionDirName(prefix, used))
	}
	s.ResolvedCounter = used

	copied, err := p.Copier.CopySession(ctx, dir, s.Ordered())
	return used, copied, err
}
