package contracts

// Prompter asks the user a yes/no question before mutating requests.
type Prompter interface {
	Confirm(message string) bool
}
