package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	cameraGetPhoto                 = operation("Camera", "getPhoto")
	cameraPickImages               = operation("Camera", "pickImages")
	cameraPickLimitedLibraryPhotos = operation("Camera", "pickLimitedLibraryPhotos")
	cameraGetLimitedLibraryPhotos  = operation("Camera", "getLimitedLibraryPhotos")
	cameraCheckPermissions         = operation("Camera", "checkPermissions")
	cameraRequestPermissions       = operation("Camera", "requestPermissions")
)

// Camera takes photos and picks images from the photo library.
var Camera = &CameraService{}

// CameraService wraps the Camera plugin.
type CameraService struct{}

// CameraResultType selects how GetPhoto returns image data.
type CameraResultType string

const (
	CameraResultURI     CameraResultType = "uri"
	CameraResultBase64  CameraResultType = "base64"
	CameraResultDataURL CameraResultType = "dataUrl"
)

// CameraSource selects where GetPhoto takes the image from.
type CameraSource string

const (
	CameraSourcePrompt CameraSource = "PROMPT"
	CameraSourceCamera CameraSource = "CAMERA"
	CameraSourcePhotos CameraSource = "PHOTOS"
)

// CameraDirection selects the camera to use.
type CameraDirection string

const (
	CameraRear  CameraDirection = "REAR"
	CameraFront CameraDirection = "FRONT"
)

// CameraPermissionType names one of the permissions the plugin manages.
type CameraPermissionType string

const (
	CameraPermissionCamera CameraPermissionType = "camera"
	CameraPermissionPhotos CameraPermissionType = "photos"
)

// ImageOptions configures GetPhoto.
type ImageOptions struct {
	Quality            int                `json:"quality"`
	AllowEditing       bool               `json:"allowEditing"`
	ResultType         CameraResultType   `json:"resultType"`
	SaveToGallery      bool               `json:"saveToGallery"`
	Width              int                `json:"width"`
	Height             int                `json:"height"`
	CorrectOrientation bool               `json:"correctOrientation"`
	Source             CameraSource       `json:"source"`
	Direction          *CameraDirection   `json:"direction,omitempty"`
	PresentationStyle  *PresentationStyle `json:"presentationStyle,omitempty"`
	WebUseInput        *bool              `json:"webUseInput,omitempty"`
	PromptLabelHeader  string             `json:"promptLabelHeader"`
	PromptLabelCancel  *string            `json:"promptLabelCancel,omitempty"`
	PromptLabelPhoto   *string            `json:"promptLabelPhoto,omitempty"`
	PromptLabelPicture *string            `json:"promptLabelPicture,omitempty"`
}

// Photo is the image returned by GetPhoto. Which of Base64String, DataURL
// and Path is set depends on the requested result type.
type Photo struct {
	Base64String *string           `json:"base64String,omitempty"`
	DataURL      *string           `json:"dataUrl,omitempty"`
	Path         *string           `json:"path,omitempty"`
	WebPath      *string           `json:"webPath,omitempty"`
	Exif         map[string]string `json:"exif,omitempty"`
	Format       string            `json:"format,omitzero"`
	Saved        *bool             `json:"saved,omitempty"`
}

// GalleryImageOptions configures PickImages.
type GalleryImageOptions struct {
	Quality            int                `json:"quality"`
	Width              int                `json:"width"`
	Height             int                `json:"height"`
	CorrectOrientation bool               `json:"correctOrientation"`
	PresentationStyle  *PresentationStyle `json:"presentationStyle,omitempty"`
	Limit              *int               `json:"limit,omitempty"`
}

// GalleryPhotos is the list returned by the picker methods.
type GalleryPhotos struct {
	Photos []GalleryPhoto `json:"photos,omitempty"`
}

// GalleryPhoto is one picked image.
type GalleryPhoto struct {
	Path    string            `json:"path,omitzero"`
	WebPath *string           `json:"webPath,omitempty"`
	Exif    map[string]string `json:"exif,omitempty"`
	Format  string            `json:"format,omitzero"`
}

// CameraPermissionStatus reports the camera and photo library permissions.
type CameraPermissionStatus struct {
	Camera PermissionState `json:"camera"`
	Photos PermissionState `json:"photos"`
}

// CameraPluginPermissions lists the permissions to request.
type CameraPluginPermissions struct {
	Permissions []CameraPermissionType `json:"permissions"`
}

// GetPhoto prompts the user to pick a photo from the album or take one.
func (s *CameraService) GetPhoto(ctx context.Context, opts ImageOptions) (Photo, error) {
	return platform.CallWithResult[ImageOptions, Photo](ctx, cameraGetPhoto, opts)
}

// PickImages lets the user pick multiple images from the gallery.
func (s *CameraService) PickImages(ctx context.Context, opts GalleryImageOptions) (GalleryPhotos, error) {
	return platform.CallWithResult[GalleryImageOptions, GalleryPhotos](ctx, cameraPickImages, opts)
}

// PickLimitedLibraryPhotos lets the user update the limited photo library
// selection (iOS 15+).
func (s *CameraService) PickLimitedLibraryPhotos(ctx context.Context) (GalleryPhotos, error) {
	return platform.CallResult[GalleryPhotos](ctx, cameraPickLimitedLibraryPhotos)
}

// GetLimitedLibraryPhotos returns the photos in the limited library
// selection (iOS 14+).
func (s *CameraService) GetLimitedLibraryPhotos(ctx context.Context) (GalleryPhotos, error) {
	return platform.CallResult[GalleryPhotos](ctx, cameraGetLimitedLibraryPhotos)
}

// CheckPermissions returns the current camera and photo permissions.
func (s *CameraService) CheckPermissions(ctx context.Context) (CameraPermissionStatus, error) {
	return platform.CallResult[CameraPermissionStatus](ctx, cameraCheckPermissions)
}

// RequestPermissions requests the given permissions (iOS and Android).
func (s *CameraService) RequestPermissions(ctx context.Context, perms CameraPluginPermissions) (CameraPermissionStatus, error) {
	return platform.CallWithResult[CameraPluginPermissions, CameraPermissionStatus](ctx, cameraRequestPermissions, perms)
}
