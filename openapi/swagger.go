package openapi

const swaggerDoc = `{
  "openapi": "3.0.0",
  "info": {
    "title": "uledger",
    "version": "1.0.0",
    "description": "Ledger of bounded 256-bit amounts and their canonical byte encoding"
  },
  "paths": {
    "/v1/swagger.json": {
      "get": {"operationId": "GetSwagger", "responses": {"200": {"description": "this document"}}}
    },
    "/v1/health": {
      "get": {"operationId": "GetHealth", "responses": {"200": {"description": "health status"}}}
    },
    "/v1/stats": {
      "get": {"operationId": "GetStats", "responses": {"200": {"description": "ledger statistics"}}}
    },
    "/v1/u256/encode": {
      "get": {
        "operationId": "EncodeU256",
        "parameters": [{"name": "value", "in": "query", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "canonical encoding"}, "400": {"description": "value out of range"}}
      }
    },
    "/v1/u256/decode": {
      "get": {
        "operationId": "DecodeU256",
        "parameters": [{"name": "rlp", "in": "query", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "decoded value"}, "400": {"description": "malformed encoding"}}
      }
    },
    "/v1/u256/check": {
      "get": {
        "operationId": "CheckU256",
        "parameters": [{"name": "value", "in": "query", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "validity"}}
      }
    },
    "/v1/accounts/{address}": {
      "get": {
        "operationId": "GetAccount",
        "parameters": [{"name": "address", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "account state"}, "400": {"description": "invalid address"}}
      }
    },
    "/v1/accounts/{address}/mint": {
      "post": {
        "operationId": "Mint",
        "parameters": [{"name": "address", "in": "path", "required": true, "schema": {"type": "string"}}],
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/MintRequest"}}}},
        "responses": {"200": {"description": "account state"}, "400": {"description": "invalid amount"}}
      }
    },
    "/v1/transfers": {
      "get": {
        "operationId": "GetTransfers",
        "parameters": [{"name": "limit", "in": "query", "required": false, "schema": {"type": "integer"}}],
        "responses": {"200": {"description": "transfers, newest first"}}
      },
      "post": {
        "operationId": "PostTransfer",
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/TransferRequest"}}}},
        "responses": {"200": {"description": "transfer"}, "409": {"description": "nonce or balance conflict"}}
      }
    }
  },
  "components": {
    "schemas": {
      "MintRequest": {
        "type": "object",
        "properties": {"amount": {"type": "string"}}
      },
      "TransferRequest": {
        "type": "object",
        "properties": {
          "from": {"type": "string"},
          "to": {"type": "string"},
          "amount": {"type": "string"},
          "nonce": {"type": "string"}
        }
      }
    }
  }
}`
