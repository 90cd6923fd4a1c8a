package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEncodeHooks{}
	e.OnMeasure(ctx, 0, 24, 22, true)
	e.OnEncodeStart(ctx, 6)
	e.OnEncodeComplete(ctx, 6, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "encode")
	c.OnCacheMiss(ctx, "encode")
	c.OnCacheSet(ctx, "encode", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/encode")
	h.OnResponse(ctx, "POST", "/v1/encode", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Encode().(NoopEncodeHooks); !ok {
		t.Error("Encode() should return NoopEncodeHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customEncode := &testEncodeHooks{}
	SetEncodeHooks(customEncode)
	if Encode() != customEncode {
		t.Error("SetEncodeHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Encode().(NoopEncodeHooks); !ok {
		t.Error("Reset() should restore NoopEncodeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEncodeHooks{}
	SetEncodeHooks(custom)
	SetEncodeHooks(nil)

	if Encode() != custom {
		t.Error("SetEncodeHooks(nil) should be ignored")
	}

	Reset()
}

type testEncodeHooks struct{ NoopEncodeHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
