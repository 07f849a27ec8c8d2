// Package docs is the swagger document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/travel/main.go -o cmd/travel/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/flights": {
            "get": {
                "description": "City search when originCity and destinationCity are set, otherwise airport code search.",
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search flight offers",
                "parameters": [
                    {"type": "string", "name": "originCity", "in": "query"},
                    {"type": "string", "name": "originCountry", "in": "query"},
                    {"type": "string", "name": "destinationCity", "in": "query"},
                    {"type": "string", "name": "destinationCountry", "in": "query"},
                    {"type": "string", "name": "originLocationCode", "in": "query"},
                    {"type": "string", "name": "destinationLocationCode", "in": "query"},
                    {"type": "string", "name": "departureDate", "in": "query", "required": true},
                    {"type": "string", "name": "returnDate", "in": "query"},
                    {"type": "integer", "name": "adults", "in": "query"},
                    {"type": "integer", "name": "children", "in": "query"},
                    {"type": "integer", "name": "infants", "in": "query"},
                    {"type": "string", "name": "travelClass", "in": "query"},
                    {"type": "boolean", "name": "nonStop", "in": "query"},
                    {"type": "integer", "name": "maxPrice", "in": "query"},
                    {"type": "integer", "name": "max", "in": "query"},
                    {"type": "integer", "name": "airportRadius", "in": "query"},
                    {"type": "boolean", "name": "includePrediction", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search flight offers",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/flights/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Get one flight offer",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/geocode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Geocode a city",
                "parameters": [
                    {"type": "string", "name": "city", "in": "query", "required": true},
                    {"type": "string", "name": "country", "in": "query"},
                    {"type": "string", "name": "zipcode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/airports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Airports near a city or coordinates",
                "parameters": [
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "country", "in": "query"},
                    {"type": "number", "name": "latitude", "in": "query"},
                    {"type": "number", "name": "longitude", "in": "query"},
                    {"type": "number", "name": "radius", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/hotels": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hotels"],
                "summary": "List hotels",
                "parameters": [
                    {"type": "string", "name": "cityCode", "in": "query"},
                    {"type": "number", "name": "latitude", "in": "query"},
                    {"type": "number", "name": "longitude", "in": "query"},
                    {"type": "string", "name": "hotelIds", "in": "query"},
                    {"type": "integer", "name": "radius", "in": "query"},
                    {"type": "string", "name": "ratings", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/hotels/by-city": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hotels"],
                "summary": "List hotels near a city",
                "parameters": [
                    {"type": "string", "name": "city", "in": "query", "required": true},
                    {"type": "string", "name": "countryCode", "in": "query"},
                    {"type": "integer", "name": "radius", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/hotels/offers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hotels"],
                "summary": "Search hotel room offers",
                "parameters": [
                    {"type": "string", "name": "hotelIds", "in": "query"},
                    {"type": "string", "name": "cityCode", "in": "query"},
                    {"type": "string", "name": "checkInDate", "in": "query", "required": true},
                    {"type": "string", "name": "checkOutDate", "in": "query", "required": true},
                    {"type": "integer", "name": "adults", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/hotels/offers/by-city": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hotels"],
                "summary": "Search hotel room offers near a city",
                "parameters": [
                    {"type": "string", "name": "cityName", "in": "query", "required": true},
                    {"type": "string", "name": "countryCode", "in": "query"},
                    {"type": "string", "name": "checkInDate", "in": "query", "required": true},
                    {"type": "string", "name": "checkOutDate", "in": "query", "required": true},
                    {"type": "integer", "name": "adults", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/v1/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Service availability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/status.StatusResponse"}}
                }
            }
        },
        "/v1/status/amadeus": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Live provider API probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/status.AmadeusStatusResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/status.AmadeusStatusResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "meta": {},
                "dictionaries": {},
                "message": {"type": "string"}
            }
        },
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "status.StatusResponse": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "version": {"type": "string"},
                "services": {
                    "type": "object",
                    "properties": {
                        "geocoding": {"type": "boolean"},
                        "amadeus": {"type": "boolean"},
                        "fullSearch": {"type": "boolean"},
                        "cache": {"type": "boolean"}
                    }
                }
            }
        },
        "status.AmadeusStatusResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "serviceAvailable": {"type": "boolean"},
                "apis": {"type": "object"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TripScout Travel API",
	Description:      "Flight, airport and hotel search over Amadeus with Nominatim geocoding.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
