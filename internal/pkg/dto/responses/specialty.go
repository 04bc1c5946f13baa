package responses

type Specialty struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
