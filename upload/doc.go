// Package upload creates GPU textures from prepared texprep textures.
//
// Two paths exist. Create and Update go through gpucontext, the
// interfaces GoGPU host applications expose; these accept 8-bit RGBA
// only. Uploader talks to a wgpu device directly and accepts every
// target format WebGPU can represent.
//
//	tex, err := texprep.Prepare(src, texprep.ForWebGPU())
//	if err != nil {
//	    return err
//	}
//	gpuTex, err := upload.NewUploader(device, device.Queue()).Upload(tex, "albedo")
package upload
