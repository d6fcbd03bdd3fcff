//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 桌面端入口在根目录的 main.go；绑定入口 mobile.go 和 embed.go
// 只在 -tags mobile 时编译，这里让 ./... 在桌面端也能通过构建。
package mobile

// Dummy 与移动端同名的导出函数，保持两种构建的包接口一致
func Dummy() {}
