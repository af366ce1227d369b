package main

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
)

type Server struct{}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.render(w, r.URL.Path)
}

func (s *Server) render(w http.ResponseWriter, name string) {
	fmt.Fprint(w, format(name))
}

func format(name string) string {
	return fmt.Sprintf("hello %s", name)
}

func describe(v interface{}) bool {
	t := reflect.TypeOf(v)
	return t != nil
}

func validate(value string) bool {
	return regexp.MustCompile("^[a-z]+$").MatchString(value)
}

func main() {
	_ = describe(1)
	_ = validate("a")
	_ = http.ListenAndServe(":8080", &Server{})
}
