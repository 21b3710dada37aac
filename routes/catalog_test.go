package routes

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPlanetCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "POST", "/planets", gin.H{
		"name":       "Tatooine",
		"population": 200000,
		"diameter":   10465,
		"terrain":    "desert",
		"gravity":    "1 standard",
		"climate":    "arid",
	}, "")
	assert.Equal(t, 201, w.Code)
	created := decodeBody(t, w)
	id := created["id"].(float64)
	assert.NotZero(t, id)

	path := fmt.Sprintf("/planets/%.0f", id)
	w = doRequest(r, "GET", path, nil, "")
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Tatooine", body["name"])
	assert.Equal(t, float64(200000), body["population"])
	assert.Equal(t, "desert", body["terrain"])

	// partial update touches only the supplied field
	w = doRequest(r, "PUT", path, gin.H{"population": 200001}, "")
	assert.Equal(t, 200, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(200001), body["population"])
	assert.Equal(t, "Tatooine", body["name"])
	assert.Equal(t, "arid", body["climate"])

	w = doRequest(r, "GET", "/planets", nil, "")
	assert.Equal(t, 200, w.Code)
	var planets []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &planets))
	assert.Len(t, planets, 1)

	w = doRequest(r, "DELETE", path, nil, "")
	assert.Equal(t, 200, w.Code)

	w = doRequest(r, "GET", path, nil, "")
	assert.Equal(t, 404, w.Code)

	w = doRequest(r, "DELETE", path, nil, "")
	assert.Equal(t, 404, w.Code)
}

func TestCharacterCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "POST", "/characters", gin.H{
		"name":       "Luke Skywalker",
		"eye_color":  "blue",
		"hair_color": "blond",
		"gender":     "male",
		"height":     172,
		"birth_date": -19,
	}, "")
	assert.Equal(t, 201, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	path := fmt.Sprintf("/characters/%.0f", id)
	w = doRequest(r, "PUT", path, gin.H{"height": 173}, "")
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(173), body["height"])
	assert.Equal(t, "blue", body["eye_color"])

	w = doRequest(r, "DELETE", path, nil, "")
	assert.Equal(t, 200, w.Code)
	w = doRequest(r, "GET", path, nil, "")
	assert.Equal(t, 404, w.Code)
}

func TestVehicleCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "POST", "/vehicles", gin.H{
		"name":          "X-34 landspeeder",
		"model":         "X-34",
		"manufacturer":  "SoroSuub Corporation",
		"passengers":    1,
		"max_speed":     250,
		"vehicle_class": "repulsorcraft",
	}, "")
	assert.Equal(t, 201, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	path := fmt.Sprintf("/vehicles/%.0f", id)
	w = doRequest(r, "GET", path, nil, "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "X-34", decodeBody(t, w)["model"])

	w = doRequest(r, "PUT", path, gin.H{"max_speed": 300}, "")
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(300), body["max_speed"])
	assert.Equal(t, "SoroSuub Corporation", body["manufacturer"])
}

func TestCatalogCreateRequiresName(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/planets", "/characters", "/vehicles"} {
		w := doRequest(r, "POST", path, gin.H{"description": "nameless"}, "")
		assert.Equal(t, 400, w.Code, path)
	}
}

func TestCatalogGetUnknownID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "GET", "/planets/9999", nil, "")
	assert.Equal(t, 404, w.Code)

	w = doRequest(r, "GET", "/planets/abc", nil, "")
	assert.Equal(t, 400, w.Code)
}

func TestAddressCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "POST", "/addresses", gin.H{"street_name": "Palace Road", "street_number": "1", "postal_code": "THEED-1"}, "")
	assert.Equal(t, 201, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, "POST", "/addresses", gin.H{"street_name": "No Postal"}, "")
	assert.Equal(t, 400, w.Code)

	path := fmt.Sprintf("/addresses/%.0f", id)
	w = doRequest(r, "PUT", path, gin.H{"street_number": "2"}, "")
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "2", body["street_number"])
	assert.Equal(t, "THEED-1", body["postal_code"])

	w = doRequest(r, "DELETE", path, nil, "")
	assert.Equal(t, 200, w.Code)
	w = doRequest(r, "DELETE", path, nil, "")
	assert.Equal(t, 404, w.Code)
}
