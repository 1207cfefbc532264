package theme

import "context"

// Resolve looks a theme up by id: built-ins first, then the repository
// (community and user-saved themes share the same table). Authorization
// for unpublished themes is the caller's concern.
func Resolve(ctx context.Context, repo Repository, id string) (*Theme, error) {
	if t := GetBuiltin(id); t != nil {
		return t, nil
	}
	return repo.GetByID(ctx, id)
}
