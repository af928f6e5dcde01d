// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки: цвета концентрических колец мишени.
type Renderable struct {
	Primary   color.RGBA
	Secondary color.RGBA
}
