// Package script adapts the teacher's Lua scripting surface
// (internal/lua/engine.go in faizanhussain2310-GoRedis) from a full
// Redis command executor down to a single sorted-set container: a Lua
// snippet sees a "zset" table whose functions call straight through to
// a *zset.ZSet[string] instance, instead of redis.call/redis.pcall
// dispatching an arbitrary command by name.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"sortedset/internal/zset"
)

// Engine evaluates Lua snippets against a single string-keyed ZSet.
type Engine struct {
	z *zset.ZSet[string]
}

// NewEngine returns an Engine that scripts operate against z.
func NewEngine(z *zset.ZSet[string]) *Engine {
	return &Engine{z: z}
}

// Eval runs script once in a fresh Lua state with the "zset" table
// registered, returning whatever value is left on top of the stack.
func (e *Engine) Eval(script string) (interface{}, error) {
	L := lua.NewState()
	defer L.Close()

	e.registerZSetAPI(L)

	if err := L.DoString(script); err != nil {
		return nil, fmt.Errorf("script error: %w", err)
	}
	return e.convertLuaToGo(L.Get(-1)), nil
}

func (e *Engine) registerZSetAPI(L *lua.LState) {
	t := L.NewTable()

	t.RawSetString("add", L.NewFunction(func(L *lua.LState) int {
		score := L.CheckInt64(1)
		member := L.CheckString(2)
		e.z.Add(score, member)
		return 0
	}))

	t.RawSetString("rem", L.NewFunction(func(L *lua.LState) int {
		member := L.CheckString(1)
		_, ok := e.z.Remove(member)
		L.Push(lua.LBool(ok))
		return 1
	}))

	t.RawSetString("score", L.NewFunction(func(L *lua.LState) int {
		member := L.CheckString(1)
		score, ok := e.z.Score(member)
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(score))
		return 1
	}))

	t.RawSetString("rank", L.NewFunction(func(L *lua.LState) int {
		member := L.CheckString(1)
		L.Push(lua.LNumber(e.z.Rank(member)))
		return 1
	}))

	t.RawSetString("card", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(e.z.Cardinality()))
		return 1
	}))

	t.RawSetString("range", L.NewFunction(func(L *lua.LState) int {
		start := int(L.CheckInt(1))
		stop := int(L.CheckInt(2))
		entries := e.z.RangeByRank(start, stop)
		result := L.NewTable()
		for i, entry := range entries {
			row := L.NewTable()
			row.RawSetString("member", lua.LString(entry.Member))
			row.RawSetString("score", lua.LNumber(entry.Score))
			result.RawSetInt(i+1, row)
		}
		L.Push(result)
		return 1
	}))

	L.SetGlobal("zset", t)
}

// convertLuaToGo converts a Lua value to its nearest Go representation,
// for reporting the script's final expression back to the caller.
func (e *Engine) convertLuaToGo(lv lua.LValue) interface{} {
	switch v := lv.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	case *lua.LTable:
		arr := make([]interface{}, 0)
		v.ForEach(func(_, val lua.LValue) {
			arr = append(arr, e.convertLuaToGo(val))
		})
		return arr
	default:
		return nil
	}
}
