package a

type Person struct{ ID string }

type Registry interface {
	People() []Person
	FindByID(id string) (Person, error)
}

type Query interface {
	GroupByFavoriteMovie() []string
}

func bad(ids []string, r Registry, q Query) {
	for _, id := range ids {
		_ = r.People() // want "People called inside loop copies every person"
		_ = id
	}
	for i := 0; i < 3; i++ {
		_ = q.GroupByFavoriteMovie() // want "GroupByFavoriteMovie called inside loop rebuilds the movie index"
	}
}

func good(ids []string, r Registry) {
	people := r.People()
	for _, id := range ids {
		_, _ = r.FindByID(id)
	}
	_ = people
}
