package entities

import "fmt"

// fakeResourceLoader 测试用资源加载器
// 按首次出现的顺序给名称分配递增的纹理柄，不触碰渲染层
type fakeResourceLoader struct {
	ids map[string]TextureID
}

func newFakeResourceLoader() *fakeResourceLoader {
	return &fakeResourceLoader{ids: make(map[string]TextureID)}
}

func (f *fakeResourceLoader) Texture(name string) (TextureID, error) {
	if name == "" {
		return TextureNone, fmt.Errorf("empty texture name")
	}
	if id, ok := f.ids[name]; ok {
		return id, nil
	}
	id := TextureID(len(f.ids))
	f.ids[name] = id
	return id, nil
}
