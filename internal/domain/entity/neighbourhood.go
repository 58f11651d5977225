package entity

// Neighbourhood используется только как домен фильтров, собственного
// жизненного цикла у него нет.
type Neighbourhood struct {
	Name string `json:"name"`
}
