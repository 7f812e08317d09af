package user

import "context"

type actorKey struct{}

func ContextWithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext returns the actor stored by ContextWithActor.
func ActorFromContext(ctx context.Context) (Actor, error) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || a.ID == "" || !a.Role.Valid() {
		return Actor{}, ErrActorMissing
	}
	return a, nil
}

// RequireFromContext returns the context's actor if it holds p.
func RequireFromContext(ctx context.Context, p Permission) (Actor, error) {
	a, err := ActorFromContext(ctx)
	if err != nil {
		return Actor{}, err
	}
	if err := a.Require(p); err != nil {
		return Actor{}, err
	}
	return a, nil
}
