/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pool

import (
	"testing"
)

func TestGetPut(t *testing.T) {
	p := NewLockFreePool(func() interface{} {
		return new(int)
	})
	x := p.Get().(*int)
	*x = 10086
	p.Put(x)
	if actual := p.InUseObjects(); actual != 0 {
		t.Errorf("Expected 0 found %v", actual)
	}
}

func TestInUseObjects(t *testing.T) {
	p := NewLockFreePool(func() interface{} {
		return new(int)
	}, OptionPoolSizePerCPU(16), OptionInitFullPoolSize(8))
	objects := make([]interface{}, 0, 32)
	for i := 0; i < 32; i++ {
		objects = append(objects, p.Get())
	}
	if actual := p.InUseObjects(); actual != 32 {
		t.Errorf("Expected 32 found %v", actual)
	}
	for _, x := range objects {
		p.Put(x)
	}
	if actual := p.InUseObjects(); actual != 0 {
		t.Errorf("Expected 0 found %v", actual)
	}
}

func TestInvalidOptionFallback(t *testing.T) {
	p := NewLockFreePool(func() interface{} {
		return new(int)
	}, OptionPoolSizePerCPU(4), OptionInitFullPoolSize(8))
	x := p.Get()
	p.Put(x)
	if actual := p.InUseObjects(); actual != 0 {
		t.Errorf("Expected 0 found %v", actual)
	}
}

func BenchmarkGetPut(b *testing.B) {
	p := NewLockFreePool(func() interface{} {
		return new(int)
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Put(p.Get())
	}
}
