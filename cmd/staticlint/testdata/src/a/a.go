package a

import (
	"errors"
	"fmt"
	"net/http"
)

type statusError struct{}

func (statusError) Error() string { return "status" }

func handler(w http.ResponseWriter, r *http.Request) {
	err := errors.New("db password is hunter2")

	http.Error(w, err.Error(), http.StatusInternalServerError)           // want "error text must not be sent to the client via http.Error"
	http.Error(w, "failed: "+err.Error(), http.StatusInternalServerError) // want "error text must not be sent to the client via http.Error"
	http.Error(w, fmt.Sprintf("failed: %s", statusError{}.Error()), 500)  // want "error text must not be sent to the client via http.Error"

	http.Error(w, "Internal server error", http.StatusInternalServerError)
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	fmt.Println(err.Error())
}
