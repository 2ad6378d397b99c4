package ports

// LinkResolver resolves a recent-item link file into its target path.
// Resolution may fail for corrupt or inaccessible links; callers treat such
// failures as per-item skips.
type LinkResolver interface {
	Resolve(linkPath string) (string, error)
}
