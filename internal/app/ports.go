package app

import "context"

type SpanUseCase interface {
	Span(ctx context.Context, req SpanRequest) (*SpanResponse, error)
}

type ShiftStartUseCase interface {
	ShiftStart(ctx context.Context, req ShiftRequest) (*CascadeResponse, error)
}

type ExtendUseCase interface {
	Extend(ctx context.Context, req ExtendRequest) (*CascadeResponse, error)
}

type UrgencyUseCase interface {
	Urgency(ctx context.Context, req UrgencyRequest) (*UrgencyResponse, error)
}
