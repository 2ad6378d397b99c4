package ports

// IconDecorator applies cosmetic decoration to the output directory, such as
// a custom folder icon. Best-effort: callers ignore failures.
type IconDecorator interface {
	Decorate(dir string) error
}
