package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMoveSensitivity sets the translation speed.
//
// Parameters:
//   - sensitivity: world units per millisecond
//
// Returns:
//   - CameraControllerOption: functional option to set the move sensitivity
func WithMoveSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSensitivity = sensitivity
	}
}

// WithMouseSensitivity sets the mouse look speed.
//
// Parameters:
//   - sensitivity: radians per pixel of cursor movement
//
// Returns:
//   - CameraControllerOption: functional option to set the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}
