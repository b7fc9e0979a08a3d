package serverutils

import (
	"bytes"
	"encoding/json"
	"strconv"

	"bulletin-board-be/internal/constant"

	"github.com/gofiber/fiber/v2"
)

// ParseBody decodes a JSON object body into out and also returns it as a
// generic map, numbers kept verbatim. An empty body counts as {}.
// A field whose JSON type does not fit out, such as "note_id":"1" or
// "board_id":1.5, makes the whole body invalid rather than being coerced.
func ParseBody(ctx *fiber.Ctx, out interface{}) (map[string]interface{}, error) {
	body := bytes.TrimSpace(ctx.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}

	raw := make(map[string]interface{})
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, BadRequest(constant.MessageInvalidBody)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, BadRequest(constant.MessageInvalidBody)
		}
	}

	return raw, nil
}

// ParamsID reads an integer path parameter. Non-integers behave like an unknown route.
func ParamsID(ctx *fiber.Ctx, key string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(key), 10, 64)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}
